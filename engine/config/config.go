package config

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrInvalid wraps every validation failure reported by Load and Validate.
	ErrInvalid = errors.New("invalid config")
)

// Config is the viewer configuration as stored in a TOML file.
type Config struct {
	Orbit    OrbitConfig    `toml:"orbit"`
	Gizmo    GizmoConfig    `toml:"gizmo"`
	Camera   CameraConfig   `toml:"camera"`
	Window   WindowConfig   `toml:"window"`
	Renderer RendererConfig `toml:"renderer"`
}

// OrbitConfig mirrors the OrbitControls option surface.
type OrbitConfig struct {
	Map bool `toml:"map" comment:"use the map preset: left pans, right rotates"`

	Damping       bool    `toml:"damping"`
	DampingFactor float64 `toml:"damping_factor"`

	MinDistance     float64 `toml:"min_distance"`
	MaxDistance     float64 `toml:"max_distance"`
	MinZoom         float64 `toml:"min_zoom"`
	MaxZoom         float64 `toml:"max_zoom"`
	MinPolarAngle   float64 `toml:"min_polar_angle"`
	MaxPolarAngle   float64 `toml:"max_polar_angle"`
	MinAzimuthAngle float64 `toml:"min_azimuth_angle"`
	MaxAzimuthAngle float64 `toml:"max_azimuth_angle"`

	RotateSpeed float64 `toml:"rotate_speed"`
	PanSpeed    float64 `toml:"pan_speed"`
	ZoomSpeed   float64 `toml:"zoom_speed"`
	KeyPanSpeed float64 `toml:"key_pan_speed"`

	EnableRotate bool `toml:"enable_rotate"`
	EnablePan    bool `toml:"enable_pan"`
	EnableZoom   bool `toml:"enable_zoom"`

	// ScreenSpacePanning is left unset to keep the preset's choice.
	ScreenSpacePanning *bool `toml:"screen_space_panning,omitempty"`

	AutoRotate      bool    `toml:"auto_rotate"`
	AutoRotateSpeed float64 `toml:"auto_rotate_speed"`

	Buttons ButtonsConfig `toml:"buttons" comment:"rotate, dolly, pan or none; empty keeps the preset"`
	Touches TouchesConfig `toml:"touches" comment:"rotate, pan, dolly_pan or dolly_rotate; empty keeps the preset"`
}

// ButtonsConfig names the action of each mouse button.
type ButtonsConfig struct {
	Left   string `toml:"left"`
	Middle string `toml:"middle"`
	Right  string `toml:"right"`
}

// TouchesConfig names the action of one- and two-finger gestures.
type TouchesConfig struct {
	One string `toml:"one"`
	Two string `toml:"two"`
}

// GizmoConfig configures the rotate gizmo attached to a selected joint.
type GizmoConfig struct {
	Mode            string  `toml:"mode" comment:"translate, rotate or scale"`
	Space           string  `toml:"space" comment:"world or local"`
	Size            float64 `toml:"size"`
	TranslationSnap float64 `toml:"translation_snap" comment:"0 disables snapping"`
	RotationSnap    float64 `toml:"rotation_snap" comment:"radians"`
	ScaleSnap       float64 `toml:"scale_snap"`
	ShowX           bool    `toml:"show_x"`
	ShowY           bool    `toml:"show_y"`
	ShowZ           bool    `toml:"show_z"`
}

// CameraConfig places the default camera.
type CameraConfig struct {
	Fov      float64    `toml:"fov" comment:"vertical field of view in degrees"`
	Near     float64    `toml:"near"`
	Far      float64    `toml:"far"`
	Position [3]float64 `toml:"position"`
	Target   [3]float64 `toml:"target"`
}

// WindowConfig sizes the native window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// RendererConfig configures presentation and the scene colors.
type RendererConfig struct {
	VSync            bool    `toml:"vsync"`
	MSAA             int     `toml:"msaa" comment:"samples per pixel, 1 or 4"`
	ClearColor       string  `toml:"clear_color" comment:"#rrggbb"`
	Turntable        bool    `toml:"turntable" comment:"spin a placeholder until the model loads"`
	TurntableSpeed   float64 `toml:"turntable_speed" comment:"radians per frame"`
	ShowSkeleton     bool    `toml:"show_skeleton"`
	SkeletonColor    string  `toml:"skeleton_color"`
	GridSize         float64 `toml:"grid_size"`
	GridDivisions    int     `toml:"grid_divisions"`
	AxesSize         float64 `toml:"axes_size"`
	PlaceholderColor string  `toml:"placeholder_color"`
}

// Default returns the configuration the viewer runs with when no file is given.
//
// Returns:
//   - *Config: the defaults
func Default() *Config {
	return &Config{
		Orbit: OrbitConfig{
			Damping:         true,
			DampingFactor:   0.05,
			MinDistance:     0,
			MaxDistance:     math.Inf(1),
			MinZoom:         0,
			MaxZoom:         math.Inf(1),
			MinPolarAngle:   0,
			MaxPolarAngle:   math.Pi,
			MinAzimuthAngle: math.Inf(-1),
			MaxAzimuthAngle: math.Inf(1),
			RotateSpeed:     1,
			PanSpeed:        1,
			ZoomSpeed:       1,
			KeyPanSpeed:     7,
			EnableRotate:    true,
			EnablePan:       true,
			EnableZoom:      true,
			AutoRotateSpeed: 2,
		},
		Gizmo: GizmoConfig{
			Mode:  "rotate",
			Space: "local",
			Size:  0.5,
			ShowX: true,
			ShowY: true,
			ShowZ: true,
		},
		Camera: CameraConfig{
			Fov:      75,
			Near:     0.1,
			Far:      1000,
			Position: [3]float64{0, 0, 5},
		},
		Window: WindowConfig{
			Title:  "VRM Viewer",
			Width:  1280,
			Height: 720,
		},
		Renderer: RendererConfig{
			VSync:            true,
			MSAA:             4,
			ClearColor:       "#efefef",
			Turntable:        true,
			TurntableSpeed:   0.1,
			ShowSkeleton:     true,
			SkeletonColor:    "#3c3c3c",
			GridSize:         10,
			GridDivisions:    10,
			AxesSize:         5,
			PlaceholderColor: "#111111",
		},
	}
}

// Load reads path over the defaults and validates the result. Keys missing
// from the file keep their default; unknown keys are an error.
//
// Parameters:
//   - path: the TOML file
//
// Returns:
//   - *Config: the merged configuration
//   - error: error if the file cannot be read, parsed or validated
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := toml.NewDecoder(bufio.NewReader(f))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c to path, replacing any existing file.
//
// Parameters:
//   - path: the destination file
//
// Returns:
//   - error: error if the file cannot be written
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	w := bufio.NewWriter(f)
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write config: %w", err)
	}
	return f.Close()
}

// Validate checks ranges and names. Every failure wraps ErrInvalid.
//
// Returns:
//   - error: the first problem found, or nil
func (c *Config) Validate() error {
	o := c.Orbit
	switch {
	case o.MinDistance > o.MaxDistance:
		return fmt.Errorf("%w: orbit.min_distance %v exceeds max_distance %v", ErrInvalid, o.MinDistance, o.MaxDistance)
	case o.MinZoom > o.MaxZoom:
		return fmt.Errorf("%w: orbit.min_zoom %v exceeds max_zoom %v", ErrInvalid, o.MinZoom, o.MaxZoom)
	case o.MinPolarAngle > o.MaxPolarAngle:
		return fmt.Errorf("%w: orbit.min_polar_angle %v exceeds max_polar_angle %v", ErrInvalid, o.MinPolarAngle, o.MaxPolarAngle)
	case o.Damping && (o.DampingFactor <= 0 || o.DampingFactor > 1):
		return fmt.Errorf("%w: orbit.damping_factor %v outside (0, 1]", ErrInvalid, o.DampingFactor)
	}

	if _, err := parseButtons(o.Buttons); err != nil {
		return err
	}
	if _, err := parseTouches(o.Touches); err != nil {
		return err
	}

	if _, err := c.mode(); err != nil {
		return err
	}
	if _, err := c.space(); err != nil {
		return err
	}
	if c.Gizmo.Size <= 0 {
		return fmt.Errorf("%w: gizmo.size must be positive", ErrInvalid)
	}

	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("%w: camera.fov %v outside (0, 180)", ErrInvalid, c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return fmt.Errorf("%w: camera.near must be positive and below far", ErrInvalid)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}

	if c.Renderer.MSAA != 1 && c.Renderer.MSAA != 4 {
		return fmt.Errorf("%w: renderer.msaa %d is not 1 or 4", ErrInvalid, c.Renderer.MSAA)
	}
	for key, value := range map[string]string{
		"renderer.clear_color":       c.Renderer.ClearColor,
		"renderer.skeleton_color":    c.Renderer.SkeletonColor,
		"renderer.placeholder_color": c.Renderer.PlaceholderColor,
	} {
		if _, err := ParseColor(value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
		}
	}
	return nil
}
