package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// fileWatcherImpl is the implementation of the FileWatcher interface.
type fileWatcherImpl struct {
	watcher *fsnotify.Watcher
	logger  *log.Logger

	mu        sync.Mutex
	debounce  time.Duration
	callbacks map[string]func(string)
	timers    map[string]*time.Timer
	dirs      map[string]int
	started   bool
	done      chan struct{}
}

// FileWatcher reports changes to individual files after a quiet period.
//
// Files are watched through their parent directory, so editors and exporters
// that replace a file by renaming a temporary over it are still seen.
type FileWatcher interface {
	// Watch registers callback for every file in files. The callback runs on
	// a timer goroutine with the absolute path of the changed file.
	//
	// Parameters:
	//   - files: the files to watch
	//   - callback: invoked once per burst of changes
	//
	// Returns:
	//   - error: error if a path cannot be resolved or watched
	Watch(files []string, callback func(string)) error

	// Unwatch stops reporting changes to file.
	//
	// Parameters:
	//   - file: the file to forget
	//
	// Returns:
	//   - error: error if the path cannot be resolved
	Unwatch(file string) error

	// Start begins delivering events. Calling Start twice is a no-op.
	Start()

	// Close stops the watcher and cancels pending callbacks.
	//
	// Returns:
	//   - error: error from the underlying watcher
	Close() error
}

var _ FileWatcher = &fileWatcherImpl{}

// NewFileWatcher creates a new file watcher.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - FileWatcher: the watcher
//   - error: error if the platform watcher cannot be created
func NewFileWatcher(options ...FileWatcherBuilderOption) (FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	fw := &fileWatcherImpl{
		watcher:   w,
		logger:    log.Default(),
		debounce:  DefaultDebounce,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
		dirs:      make(map[string]int),
		done:      make(chan struct{}),
	}
	for _, option := range options {
		option(fw)
	}
	return fw, nil
}

func (fw *fileWatcherImpl) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}

		if _, known := fw.callbacks[absPath]; !known {
			dir := filepath.Dir(absPath)
			if fw.dirs[dir] == 0 {
				if err := fw.watcher.Add(dir); err != nil {
					return fmt.Errorf("failed to watch %s: %w", dir, err)
				}
			}
			fw.dirs[dir]++
		}
		fw.callbacks[absPath] = callback
	}

	return nil
}

func (fw *fileWatcherImpl) Unwatch(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, known := fw.callbacks[absPath]; !known {
		return nil
	}
	delete(fw.callbacks, absPath)
	if timer, ok := fw.timers[absPath]; ok {
		timer.Stop()
		delete(fw.timers, absPath)
	}

	dir := filepath.Dir(absPath)
	fw.dirs[dir]--
	if fw.dirs[dir] <= 0 {
		delete(fw.dirs, dir)
		// the directory may already be gone
		_ = fw.watcher.Remove(dir)
	}
	return nil
}

func (fw *fileWatcherImpl) Start() {
	fw.mu.Lock()
	if fw.started {
		fw.mu.Unlock()
		return
	}
	fw.started = true
	fw.mu.Unlock()

	go fw.loop()
}

func (fw *fileWatcherImpl) Close() error {
	fw.mu.Lock()
	for path, timer := range fw.timers {
		timer.Stop()
		delete(fw.timers, path)
	}
	fw.callbacks = make(map[string]func(string))
	started := fw.started
	fw.mu.Unlock()

	err := fw.watcher.Close()
	if started {
		<-fw.done
	}
	return err
}

func (fw *fileWatcherImpl) loop() {
	defer close(fw.done)
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				fw.handleFileChange(filepath.Clean(event.Name))
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Printf("WARNING: watcher: %v", err)
		}
	}
}

// handleFileChange restarts the quiet-period timer of a watched file.
func (fw *fileWatcherImpl) handleFileChange(filePath string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[filePath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[filePath]; exists {
		timer.Stop()
	}

	fw.timers[filePath] = time.AfterFunc(fw.debounce, func() {
		fw.mu.Lock()
		delete(fw.timers, filePath)
		_, still := fw.callbacks[filePath]
		fw.mu.Unlock()
		if still {
			callback(filePath)
		}
	})
}
