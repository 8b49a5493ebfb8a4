package engine

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/config"
	"github.com/Carmen-Shannon/vrm-viewer/engine/controls/orbit"
	"github.com/Carmen-Shannon/vrm-viewer/engine/joint"
	"github.com/Carmen-Shannon/vrm-viewer/engine/loader"
	"github.com/Carmen-Shannon/vrm-viewer/engine/model"
	"github.com/Carmen-Shannon/vrm-viewer/engine/profiler"
	"github.com/Carmen-Shannon/vrm-viewer/engine/renderer"
	"github.com/Carmen-Shannon/vrm-viewer/engine/watcher"
	"github.com/Carmen-Shannon/vrm-viewer/engine/window"
)

// idleFrame is how long the loop sleeps when nothing needs drawing.
const idleFrame = time.Second / 60

// loadResult carries a finished model load back to the window thread.
type loadResult struct {
	path  string
	model model.Model
	err   error
}

// viewer implements the Viewer interface.
// Input, control updates and drawing run on the window thread; model loads
// run on background goroutines and are handed over through loaded.
type viewer struct {
	cfg    *config.Config
	logger *log.Logger

	window   window.Window
	renderer renderer.Renderer
	loader   loader.Loader
	watcher  watcher.FileWatcher

	stage *stage
	batch *renderer.LineBatch

	modelPath   string
	watch       bool
	mapControls bool

	loaded chan loadResult

	wg          sync.WaitGroup
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	profiler         *profiler.Profiler
	profilingEnabled bool

	redrawInterval time.Duration // forced redraw period; 0 = draw on demand only
	lastFrame      time.Time
}

// Viewer is the VRM viewer application: a window showing the model's
// skeleton, with orbit controls for the camera and a rotate gizmo on the
// selected bone.
type Viewer interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the camera driven by the orbit controls.
	Camera() camera.Camera

	// Orbit returns the orbit controls.
	Orbit() orbit.OrbitControls

	// Rig returns the joints of the loaded model, or nil before a model is loaded.
	Rig() *joint.Rig

	// Model returns the loaded model, or nil.
	Model() model.Model

	// Load starts loading path in the background. The placeholder spins
	// until the model arrives.
	//
	// Parameters:
	//   - path: the .vrm, .glb or .gltf file
	Load(path string)

	// Run shows the window and blocks until it closes.
	//
	// Returns:
	//   - error: error if file watching cannot be started
	Run() error

	// Quit closes the window and stops background work.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Viewer = &viewer{}

// NewViewer creates the window, renderer and scene described by the options.
//
// Parameters:
//   - options: functional options for viewer configuration
//
// Returns:
//   - Viewer: the newly created viewer
//   - error: error if the window or renderer cannot be created
func NewViewer(options ...ViewerBuilderOption) (Viewer, error) {
	v := &viewer{
		cfg:         config.Default(),
		logger:      log.Default(),
		loaded:      make(chan loadResult, 1),
		quitChannel: make(chan struct{}),
		batch:       renderer.NewLineBatch(),
	}
	for _, opt := range options {
		opt(v)
	}

	if v.window == nil {
		w, err := window.NewWindow(
			window.WithTitle(common.Coalesce(v.cfg.Window.Title, "VRM Viewer")),
			window.WithSize(v.cfg.Window.Width, v.cfg.Window.Height),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create window: %w", err)
		}
		v.window = w
	}

	presentMode := renderer.PresentModeUncapped
	if v.cfg.Renderer.VSync {
		presentMode = renderer.PresentModeVSync
	}
	msaa, err := renderer.MSAASampleCountFromSamples(v.cfg.Renderer.MSAA)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, v.window,
		renderer.WithPresentMode(presentMode),
		renderer.WithMSAA(msaa),
		renderer.WithClearColor(config.MustColor(v.cfg.Renderer.ClearColor, common.White)),
	)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	v.renderer = r

	v.loader = loader.NewLoader(loader.BackendTypeGLTF, loader.WithLogger(v.logger))
	v.stage = newStage(v.cfg, v.window.Element(), v.mapControls, v.logger)
	if v.profilingEnabled {
		v.profiler = profiler.NewProfiler(v.logger, time.Second)
	}

	v.window.SetResizeCallback(func(width, height int) {
		v.renderer.Resize(width, height)
		el := v.window.Element()
		v.stage.resize(el.ClientWidth(), el.ClientHeight())
	})
	return v, nil
}

func (v *viewer) Window() window.Window      { return v.window }
func (v *viewer) Camera() camera.Camera      { return v.stage.camera }
func (v *viewer) Orbit() orbit.OrbitControls { return v.stage.orbit }
func (v *viewer) Rig() *joint.Rig            { return v.stage.rig }
func (v *viewer) Model() model.Model         { return v.stage.model }

func (v *viewer) Load(path string) {
	v.modelPath = path
	v.load(path, v.loader.Load)
}

// load runs fn on a goroutine tracked by the WaitGroup and hands the result
// to the window thread unless the viewer quits first.
func (v *viewer) load(path string, fn func(string) (model.Model, error)) {
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		m, err := fn(path)
		select {
		case v.loaded <- loadResult{path: path, model: m, err: err}:
		case <-v.quitChannel:
		}
	}()
}

func (v *viewer) Run() error {
	if v.watch && v.modelPath != "" {
		if err := v.startWatcher(); err != nil {
			return err
		}
	}

	v.window.SetUpdateCallback(v.frame)
	v.window.ProcessMessages()

	v.signalQuit()
	v.wg.Wait()
	if v.watcher != nil {
		if err := v.watcher.Close(); err != nil {
			v.logger.Printf("WARNING: watcher: %v", err)
		}
	}
	v.stage.dispose()
	v.renderer.Release()
	return nil
}

// startWatcher reloads the model whenever its file settles after a change.
func (v *viewer) startWatcher() error {
	w, err := watcher.NewFileWatcher(watcher.WithLogger(v.logger))
	if err != nil {
		return err
	}
	if err := w.Watch([]string{v.modelPath}, func(path string) {
		v.logger.Printf("reloading %s", filepath.Base(path))
		v.load(path, v.loader.Reload)
	}); err != nil {
		w.Close()
		return err
	}
	w.Start()
	v.watcher = w
	return nil
}

func (v *viewer) Quit() {
	v.signalQuit()
	if v.window.IsRunning() {
		v.window.Close()
	}
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (v *viewer) signalQuit() {
	v.quitOnce.Do(func() {
		close(v.quitChannel)
	})
}

// frame runs once per message loop iteration on the window thread.
func (v *viewer) frame() {
	select {
	case res := <-v.loaded:
		v.adopt(res)
	default:
	}

	dirty := v.stage.update()
	if v.redrawInterval > 0 && time.Since(v.lastFrame) >= v.redrawInterval {
		dirty = true
	}

	if dirty {
		v.lastFrame = time.Now()
		v.stage.fill(v.batch, v.renderer.Frustum(v.stage.camera))
		if err := v.renderer.Render(v.stage.camera, v.batch); err != nil {
			v.logger.Printf("WARNING: render: %v", err)
		}
	}

	if v.profilingEnabled && v.profiler != nil {
		v.profiler.Tick(dirty)
	}

	if !dirty {
		time.Sleep(idleFrame)
	}
}

// adopt installs a loaded model, keeping the current one when loading failed.
func (v *viewer) adopt(res loadResult) {
	if res.err != nil {
		v.logger.Printf("ERROR: failed to load %s: %v", res.path, res.err)
		return
	}
	v.stage.setModel(res.model)
	v.window.SetTitle(fmt.Sprintf("%s - %s", common.Coalesce(v.cfg.Window.Title, "VRM Viewer"), res.model.Name()))
	v.logger.Printf("loaded %s: %d nodes, %d humanoid bones", res.path, len(res.model.Nodes()), len(res.model.HumanBones()))
}
