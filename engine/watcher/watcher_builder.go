package watcher

import (
	"log"
	"time"
)

// FileWatcherBuilderOption is a functional option for configuring a FileWatcher via NewFileWatcher.
type FileWatcherBuilderOption func(*fileWatcherImpl)

// WithDebounce sets the quiet period a file must stay unchanged before its
// callback runs. Non-positive values are ignored.
//
// Parameters:
//   - d: the quiet period
//
// Returns:
//   - FileWatcherBuilderOption: a function that applies the debounce option
func WithDebounce(d time.Duration) FileWatcherBuilderOption {
	return func(fw *fileWatcherImpl) {
		if d > 0 {
			fw.debounce = d
		}
	}
}

// WithLogger sets the logger watcher errors go to.
//
// Parameters:
//   - logger: the logger, nil is ignored
//
// Returns:
//   - FileWatcherBuilderOption: a function that applies the logger option
func WithLogger(logger *log.Logger) FileWatcherBuilderOption {
	return func(fw *fileWatcherImpl) {
		if logger != nil {
			fw.logger = logger
		}
	}
}
