package engine

import (
	"log"
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/config"
	"github.com/Carmen-Shannon/vrm-viewer/engine/controls/orbit"
	"github.com/Carmen-Shannon/vrm-viewer/engine/controls/transform"
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
	"github.com/Carmen-Shannon/vrm-viewer/engine/joint"
	"github.com/Carmen-Shannon/vrm-viewer/engine/model"
	"github.com/Carmen-Shannon/vrm-viewer/engine/renderer"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// clickTolerance is how far, in screen units, a press may travel and still count as a click.
	clickTolerance = 2

	placeholderRadius = 0.5
)

// stage is everything the viewer draws and interacts with: camera, orbit
// controls, helpers, the loaded model and its joint rig. It is driven by
// events on an input.Element and knows nothing about windows or GPUs.
type stage struct {
	cfg    *config.Config
	logger *log.Logger

	element *input.Element
	camera  camera.Camera
	orbit   orbit.OrbitControls

	helpers     game_object.GameObject
	placeholder game_object.GameObject
	turntable   float64

	model model.Model
	rig   *joint.Rig
	gizmo transform.TransformControls

	skeletonColor common.Color

	listeners map[input.EventType]input.ListenerID
	keyID     input.ListenerID
	press     *pressState

	dirty bool
}

type pressState struct {
	x, y float64
}

// newStage builds the scene and connects orbit controls to element.
func newStage(cfg *config.Config, element *input.Element, mapControls bool, logger *log.Logger) *stage {
	s := &stage{
		cfg:           cfg,
		logger:        logger,
		element:       element,
		skeletonColor: config.MustColor(cfg.Renderer.SkeletonColor, common.Gray),
		listeners:     make(map[input.EventType]input.ListenerID),
		dirty:         true,
	}

	s.camera = camera.NewCamera(append(cfg.CameraOptions(),
		camera.WithAspect(aspect(element.ClientWidth(), element.ClientHeight())),
	)...)

	options := append(cfg.OrbitOptions(), orbit.WithLogger(logger), orbit.WithElement(element))
	if mapControls || cfg.Orbit.Map {
		s.orbit = orbit.NewMapControls(s.camera, options...)
	} else {
		s.orbit = orbit.NewOrbitControls(s.camera, options...)
	}
	s.orbit.ListenToKeyEvents(element.OwnerDocument())
	s.orbit.On(orbit.EventChange, func(orbit.Event) { s.invalidate() })

	s.helpers = game_object.NewGameObject(game_object.WithName("helpers"))
	s.helpers.Add(game_object.NewAxesHelper(cfg.Renderer.AxesSize))
	s.helpers.Add(game_object.NewGridHelper(cfg.Renderer.GridSize, cfg.Renderer.GridDivisions))

	s.placeholder = game_object.NewGameObject(
		game_object.WithName("placeholder"),
		game_object.WithVisible(cfg.Renderer.Turntable),
		game_object.WithLines(&game_object.Lines{
			Segments: game_object.WireOctahedron(placeholderRadius),
			Color:    config.MustColor(cfg.Renderer.PlaceholderColor, common.Hex(0x111111)),
		}),
	)

	s.listeners[input.EventPointerDown] = element.AddEventListener(input.EventPointerDown, s.onPointerDown)
	s.listeners[input.EventPointerMove] = element.AddEventListener(input.EventPointerMove, s.onPointerMove)
	s.listeners[input.EventPointerUp] = element.AddEventListener(input.EventPointerUp, s.onPointerUp)
	s.keyID = element.OwnerDocument().AddEventListener(input.EventKeyDown, s.onKeyDown)
	return s
}

func aspect(width, height float64) float64 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return width / height
}

func (s *stage) invalidate() { s.dirty = true }

// setModel replaces the current model and builds a joint for every humanoid bone.
func (s *stage) setModel(m model.Model) {
	s.clearModel()
	s.model = m
	s.rig = joint.NewRig(m.HumanBones(), s.camera,
		joint.WithHost(s.element),
		joint.WithLogger(s.logger),
		joint.WithGizmoOptions(s.cfg.TransformOptions()...),
	)
	s.placeholder.SetVisible(false)
	s.invalidate()
}

func (s *stage) clearModel() {
	if s.rig != nil {
		s.rig.Dispose()
		s.rig = nil
	}
	s.gizmo = nil
	s.model = nil
	s.orbit.SetEnabled(true)
	s.placeholder.SetVisible(s.cfg.Renderer.Turntable)
	s.invalidate()
}

// resize follows the element to a new size.
func (s *stage) resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.camera.SetAspect(width / height)
	s.invalidate()
}

// update advances the scene by one frame and reports whether it must be redrawn.
func (s *stage) update() bool {
	if s.placeholder.Visible() {
		s.turntable = math.Mod(s.turntable+s.cfg.Renderer.TurntableSpeed, 2*math.Pi)
		s.placeholder.SetQuaternion(mgl64.QuatRotate(s.turntable, common.UnitY))
		s.invalidate()
	}

	if s.orbit.Enabled() && s.orbit.Update() {
		s.invalidate()
	}
	if s.rig != nil {
		s.rig.Update()
	}

	dirty := s.dirty
	s.dirty = false
	return dirty
}

// fill writes the frame's lines into batch.
func (s *stage) fill(batch *renderer.LineBatch, frustum *common.Frustum) {
	batch.Reset()
	batch.SetFrustum(frustum)

	batch.AddObject(renderer.LayerScene, s.helpers)
	batch.AddObject(renderer.LayerScene, s.placeholder)

	if s.model != nil {
		batch.AddObject(renderer.LayerScene, s.model.Root())
		if s.cfg.Renderer.ShowSkeleton {
			skeleton := s.model.SkeletonLines(s.skeletonColor)
			batch.Add(renderer.LayerScene, &skeleton, mgl64.Ident4())
		}
	}
	if s.rig != nil {
		for _, lines := range s.rig.Lines() {
			batch.Add(renderer.LayerOverlay, &lines, mgl64.Ident4())
		}
	}
}

// ray casts from a client position through the camera.
func (s *stage) ray(clientX, clientY float64) common.Ray {
	rect := s.element.BoundingClientRect()
	x := (clientX-rect.Left)/rect.Width*2 - 1
	y := -(clientY-rect.Top)/rect.Height*2 + 1
	return s.camera.Ray(x, y)
}

func (s *stage) hovered() joint.Joint {
	if s.rig == nil {
		return nil
	}
	for _, j := range s.rig.Joints() {
		if j.Hovered() {
			return j
		}
	}
	return nil
}

func (s *stage) onPointerDown(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok || e.Button != input.ButtonLeft {
		return
	}
	s.press = &pressState{x: e.ClientX, y: e.ClientY}
}

func (s *stage) onPointerMove(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok || s.rig == nil || s.rig.Dragging() {
		return
	}
	before := s.hovered()
	s.rig.Hover(s.ray(e.ClientX, e.ClientY))
	if s.hovered() != before {
		s.invalidate()
	}
}

// onPointerUp turns a press that did not travel into a click on the rig.
func (s *stage) onPointerUp(ev input.Event) {
	e, ok := ev.(*input.PointerEvent)
	if !ok || e.Button != input.ButtonLeft || s.press == nil {
		return
	}
	press := s.press
	s.press = nil
	if math.Hypot(e.ClientX-press.x, e.ClientY-press.y) > clickTolerance || s.rig == nil {
		return
	}

	s.rig.Click(s.ray(e.ClientX, e.ClientY))
	s.watchGizmo()
	s.invalidate()
}

// watchGizmo subscribes to the gizmo of a newly selected joint. The gizmo is
// discarded on deselection, taking its subscriptions with it.
func (s *stage) watchGizmo() {
	sel := s.rig.Selected()
	if sel == nil {
		s.gizmo = nil
		s.orbit.SetEnabled(true)
		return
	}
	c := sel.Controls()
	if c == s.gizmo {
		return
	}
	s.gizmo = c
	c.On(transform.PropertyChanged(transform.PropDragging), func(e transform.Event) {
		dragging, _ := e.Value.(bool)
		s.orbit.SetEnabled(!dragging)
	})
	c.On(transform.EventChange, func(transform.Event) { s.invalidate() })
	c.On(transform.EventObjectChange, func(transform.Event) { s.invalidate() })
}

// onKeyDown switches the selected gizmo: W translate, E rotate, R scale, Q toggles space.
func (s *stage) onKeyDown(ev input.Event) {
	e, ok := ev.(*input.KeyboardEvent)
	if !ok || s.gizmo == nil || s.gizmo.Dragging() {
		return
	}
	switch e.Code {
	case common.CodeKeyW:
		s.gizmo.SetMode(transform.ModeTranslate)
	case common.CodeKeyE:
		s.gizmo.SetMode(transform.ModeRotate)
	case common.CodeKeyR:
		s.gizmo.SetMode(transform.ModeScale)
	case common.CodeKeyQ:
		if s.gizmo.Space() == transform.SpaceLocal {
			s.gizmo.SetSpace(transform.SpaceWorld)
		} else {
			s.gizmo.SetSpace(transform.SpaceLocal)
		}
	}
}

// dispose disconnects every listener and releases the rig.
func (s *stage) dispose() {
	if s.rig != nil {
		s.rig.Dispose()
		s.rig = nil
	}
	for t, id := range s.listeners {
		s.element.RemoveEventListener(t, id)
		delete(s.listeners, t)
	}
	s.element.OwnerDocument().RemoveEventListener(input.EventKeyDown, s.keyID)
	s.orbit.Dispose()
}
