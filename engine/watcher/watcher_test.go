package watcher

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDebounce = 50 * time.Millisecond

func newTestWatcher(t *testing.T) FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(WithDebounce(testDebounce), WithLogger(log.New(&bytes.Buffer{}, "", 0)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Close() })
	return fw
}

func touch(t *testing.T, path string, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "avatar.vrm")
	touch(t, path, "a")

	fw := newTestWatcher(t)
	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()
	fw.Start()

	touch(t, path, "b")

	select {
	case got := <-changed:
		want, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "avatar.glb")
	touch(t, path, "0")

	fw := newTestWatcher(t)
	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) { calls.Add(1) }))
	fw.Start()

	for i := 0; i < 5; i++ {
		touch(t, path, string(rune('a'+i)))
		time.Sleep(testDebounce / 5)
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(3 * testDebounce)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "avatar.vrm")
	touch(t, path, "a")

	fw := newTestWatcher(t)
	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) { calls.Add(1) }))
	fw.Start()

	touch(t, filepath.Join(dir, "notes.txt"), "x")
	time.Sleep(4 * testDebounce)
	assert.Zero(t, calls.Load())
}

func TestWatchSeesReplacement(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "avatar.vrm")
	touch(t, path, "a")

	fw := newTestWatcher(t)
	changed := make(chan string, 4)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	tmp := filepath.Join(dir, "avatar.vrm.tmp")
	touch(t, tmp, "b")
	require.NoError(t, os.Rename(tmp, path))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("replacement not reported")
	}
}

func TestUnwatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "avatar.vrm")
	touch(t, path, "a")

	fw := newTestWatcher(t)
	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) { calls.Add(1) }))
	fw.Start()

	require.NoError(t, fw.Unwatch(path))
	require.NoError(t, fw.Unwatch(path))
	touch(t, path, "b")
	time.Sleep(4 * testDebounce)
	assert.Zero(t, calls.Load())
}

func TestWatchMissingDirectory(t *testing.T) {
	fw := newTestWatcher(t)
	err := fw.Watch([]string{filepath.Join(t.TempDir(), "nope", "a.vrm")}, func(string) {})
	assert.Error(t, err)
}

func TestCloseWithoutStart(t *testing.T) {
	fw, err := NewFileWatcher()
	require.NoError(t, err)
	assert.NoError(t, fw.Close())
}
