package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/controls/orbit"
	"github.com/Carmen-Shannon/vrm-viewer/engine/controls/transform"
)

var (
	mouseActions = map[string]orbit.MouseAction{
		"rotate": orbit.MouseRotate,
		"dolly":  orbit.MouseDolly,
		"pan":    orbit.MousePan,
		"none":   orbit.MouseNone,
	}
	touchActions = map[string]orbit.TouchAction{
		"rotate":       orbit.TouchRotate,
		"pan":          orbit.TouchPan,
		"dolly_pan":    orbit.TouchDollyPan,
		"dolly_rotate": orbit.TouchDollyRotate,
	}
)

// OrbitOptions converts the [orbit] table into builder options. Button and
// touch names left empty keep whatever NewOrbitControls or NewMapControls
// presets; Validate has already rejected unknown names.
//
// Returns:
//   - []orbit.OrbitControlsBuilderOption: the options
func (c *Config) OrbitOptions() []orbit.OrbitControlsBuilderOption {
	o := c.Orbit
	options := []orbit.OrbitControlsBuilderOption{
		orbit.WithTarget(vec(c.Camera.Target)),
		orbit.WithDistanceLimits(o.MinDistance, o.MaxDistance),
		orbit.WithZoomLimits(o.MinZoom, o.MaxZoom),
		orbit.WithPolarLimits(o.MinPolarAngle, o.MaxPolarAngle),
		orbit.WithAzimuthLimits(o.MinAzimuthAngle, o.MaxAzimuthAngle),
		orbit.WithRotateSpeed(o.RotateSpeed),
		orbit.WithPanSpeed(o.PanSpeed),
		orbit.WithZoomSpeed(o.ZoomSpeed),
		orbit.WithKeyPanSpeed(o.KeyPanSpeed),
		orbit.WithEnableRotate(o.EnableRotate),
		orbit.WithEnablePan(o.EnablePan),
		orbit.WithEnableZoom(o.EnableZoom),
	}
	if o.Damping {
		options = append(options, orbit.WithDamping(o.DampingFactor))
	}
	if o.AutoRotate {
		options = append(options, orbit.WithAutoRotate(o.AutoRotateSpeed))
	}
	if o.ScreenSpacePanning != nil {
		options = append(options, orbit.WithScreenSpacePanning(*o.ScreenSpacePanning))
	}

	preset := orbit.MouseButtons{Left: orbit.MouseRotate, Middle: orbit.MouseDolly, Right: orbit.MousePan}
	touches := orbit.Touches{One: orbit.TouchRotate, Two: orbit.TouchDollyPan}
	if o.Map {
		preset = orbit.MouseButtons{Left: orbit.MousePan, Middle: orbit.MouseDolly, Right: orbit.MouseRotate}
		touches = orbit.Touches{One: orbit.TouchPan, Two: orbit.TouchDollyRotate}
	}
	if buttons, _ := parseButtons(o.Buttons); buttons != ([3]*orbit.MouseAction{}) {
		for i, dst := range []*orbit.MouseAction{&preset.Left, &preset.Middle, &preset.Right} {
			if buttons[i] != nil {
				*dst = *buttons[i]
			}
		}
		options = append(options, orbit.WithMouseButtons(preset))
	}
	if fingers, _ := parseTouches(o.Touches); fingers != ([2]*orbit.TouchAction{}) {
		for i, dst := range []*orbit.TouchAction{&touches.One, &touches.Two} {
			if fingers[i] != nil {
				*dst = *fingers[i]
			}
		}
		options = append(options, orbit.WithTouches(touches))
	}
	return options
}

// TransformOptions converts the [gizmo] table into builder options.
//
// Returns:
//   - []transform.TransformControlsBuilderOption: the options
func (c *Config) TransformOptions() []transform.TransformControlsBuilderOption {
	g := c.Gizmo
	mode, _ := c.mode()
	space, _ := c.space()
	return []transform.TransformControlsBuilderOption{
		transform.WithMode(mode),
		transform.WithSpace(space),
		transform.WithSize(g.Size),
		transform.WithSnaps(g.TranslationSnap, g.RotationSnap, g.ScaleSnap),
		transform.WithShowAxes(g.ShowX, g.ShowY, g.ShowZ),
	}
}

// CameraOptions converts the [camera] table into camera options. The window
// aspect is applied by the caller.
//
// Returns:
//   - []camera.CameraBuilderOption: the options
func (c *Config) CameraOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithFov(c.Camera.Fov),
		camera.WithClip(c.Camera.Near, c.Camera.Far),
		camera.WithPosition(vec(c.Camera.Position)),
	}
}

// CameraTarget returns the point the camera initially looks at.
func (c *Config) CameraTarget() common.Vec3 {
	return vec(c.Camera.Target)
}

// ParseColor parses "#rrggbb" or "rrggbb".
//
// Parameters:
//   - s: the color string
//
// Returns:
//   - common.Color: the opaque color
//   - error: error if s is not six hex digits
func ParseColor(s string) (common.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return common.Color{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return common.Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return common.Hex(uint32(v)), nil
}

// MustColor parses a color already checked by Validate, falling back to fallback.
func MustColor(s string, fallback common.Color) common.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

func (c *Config) mode() (transform.Mode, error) {
	m := transform.Mode(strings.ToLower(c.Gizmo.Mode))
	if !m.Valid() {
		return "", fmt.Errorf("%w: gizmo.mode %q", ErrInvalid, c.Gizmo.Mode)
	}
	return m, nil
}

func (c *Config) space() (transform.Space, error) {
	s := transform.Space(strings.ToLower(c.Gizmo.Space))
	if !s.Valid() {
		return "", fmt.Errorf("%w: gizmo.space %q", ErrInvalid, c.Gizmo.Space)
	}
	return s, nil
}

// parseButtons resolves each button name; empty names stay nil.
func parseButtons(b ButtonsConfig) ([3]*orbit.MouseAction, error) {
	var out [3]*orbit.MouseAction
	for i, name := range []string{b.Left, b.Middle, b.Right} {
		if name == "" {
			continue
		}
		action, ok := mouseActions[strings.ToLower(name)]
		if !ok {
			return out, fmt.Errorf("%w: orbit.buttons: unknown action %q", ErrInvalid, name)
		}
		out[i] = &action
	}
	return out, nil
}

// parseTouches resolves each gesture name; empty names stay nil.
func parseTouches(t TouchesConfig) ([2]*orbit.TouchAction, error) {
	var out [2]*orbit.TouchAction
	for i, name := range []string{t.One, t.Two} {
		if name == "" {
			continue
		}
		action, ok := touchActions[strings.ToLower(name)]
		if !ok {
			return out, fmt.Errorf("%w: orbit.touches: unknown action %q", ErrInvalid, name)
		}
		out[i] = &action
	}
	return out, nil
}

func vec(v [3]float64) common.Vec3 {
	return common.Vec3(v)
}
