package loader

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/vrm-viewer/engine/model"
)

// ErrUnsupportedFile is returned for files whose extension no backend reads.
var ErrUnsupportedFile = errors.New("unsupported model format")

// LoaderBackendType identifies the model file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB/VRM loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	modelCache map[string]model.Model

	backend loaderBackend
	workers int
	logger  *log.Logger
}

// Loader defines the public-facing interface for loading and caching avatars.
// It abstracts the file format behind a generic backend and manages a cache
// of previously loaded models keyed by path.
type Loader interface {
	// Load imports a model file and caches the result.
	// If the model is already cached (by file path), the cached version is returned.
	// The backend is selected based on the file extension (.gltf, .glb or .vrm).
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - model.Model: the loaded and cached model
	//   - error: error if loading fails
	Load(path string) (model.Model, error)

	// LoadReader imports a model from a reader stream and caches it by the given name.
	//
	// Parameters:
	//   - name: the cache key for the loaded model
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - model.Model: the loaded model
	//   - error: error if loading fails
	LoadReader(name string, r io.Reader, isGLB bool) (model.Model, error)

	// LoadAll loads several files concurrently on a worker pool. Results are
	// returned in the order of paths; a failed file leaves a nil entry and
	// contributes to the joined error.
	//
	// Parameters:
	//   - paths: the files to load
	//
	// Returns:
	//   - []model.Model: one entry per path
	//   - error: the joined errors of every failed file, or nil
	LoadAll(paths []string) ([]model.Model, error)

	// Reload evicts path from the cache and loads it again. The previous model
	// stays cached when loading fails.
	//
	// Parameters:
	//   - path: the file path to reload
	//
	// Returns:
	//   - model.Model: the fresh model
	//   - error: error if loading fails
	Reload(path string) (model.Model, error)

	// Get retrieves a cached model by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - model.Model: the cached model or nil
	Get(name string) model.Model

	// Models returns a copy of the model cache.
	//
	// Returns:
	//   - map[string]model.Model: all cached models keyed by name
	Models() map[string]model.Model

	// Evict drops a model from the cache.
	//
	// Parameters:
	//   - name: the cache key to drop
	Evict(name string)
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		mu:         sync.RWMutex{},
		modelCache: make(map[string]model.Model),
		workers:    runtime.NumCPU(),
		logger:     log.Default(),
	}

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) Load(path string) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	return l.load(path)
}

func (l *loader) LoadReader(name string, r io.Reader, isGLB bool) (model.Model, error) {
	l.mu.RLock()
	if cached, ok := l.modelCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	m, err := l.backend.LoadReader(name, r, isGLB)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	l.store(name, m)
	return m, nil
}

func (l *loader) LoadAll(paths []string) ([]model.Model, error) {
	results := make([]model.Model, len(paths))
	errs := make([]error, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	pool := worker.NewDynamicWorkerPool(min(l.workers, len(paths)), len(paths), time.Second)
	defer pool.Stop()

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: path,
			Do: func() (any, error) {
				defer wg.Done()
				results[i], errs[i] = l.Load(path)
				return results[i], errs[i]
			},
		})
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

func (l *loader) Reload(path string) (model.Model, error) {
	return l.load(path)
}

func (l *loader) Get(name string) model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.modelCache[name]
}

func (l *loader) Models() map[string]model.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]model.Model, len(l.modelCache))
	for k, v := range l.modelCache {
		result[k] = v
	}
	return result
}

func (l *loader) Evict(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.modelCache, name)
}

// load reads path through the backend and replaces the cache entry.
func (l *loader) load(path string) (model.Model, error) {
	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	m, err := backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	l.store(path, m)
	l.logger.Printf("loader: loaded %s (%s, %d nodes, %d human bones)", path, m.Format(), len(m.Nodes()), len(m.HumanBones()))
	return m, nil
}

func (l *loader) store(key string, m model.Model) {
	l.mu.Lock()
	l.modelCache[key] = m
	l.mu.Unlock()
}

// resolveBackend selects an appropriate loader backend based on the file extension.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb", ".vrm":
		return l.backend, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
}
