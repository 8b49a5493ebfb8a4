package profiler

import (
	"bytes"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickLogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(log.New(&buf, "", 0), time.Hour)

	assert.False(t, p.Tick(true))
	assert.Empty(t, buf.String())

	p.lastTime = time.Now().Add(-2 * time.Hour)
	assert.True(t, p.Tick(false))
	assert.Contains(t, buf.String(), "[Profiler] FPS:")
	assert.Contains(t, buf.String(), "Drawn: 1")
	assert.Zero(t, p.frameCount)
	assert.Zero(t, p.drawCount)
}

func TestNewProfilerDefaults(t *testing.T) {
	p := NewProfiler(nil, 0)
	assert.Equal(t, time.Second, p.updateInterval)
	assert.Equal(t, log.Default(), p.logger)
}
