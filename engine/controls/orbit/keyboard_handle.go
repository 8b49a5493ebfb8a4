package orbit

import (
	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
)

// KeyboardHandle pans with the arrow keys.
type KeyboardHandle struct {
	Keys Keys

	// KeyPanSpeed is the pixel distance panned per key press.
	KeyPanSpeed float64

	pan PanOffset
}

// NewKeyboardHandle creates a handle bound to the arrow keys with speed 7.
func NewKeyboardHandle(pan PanOffset) *KeyboardHandle {
	return &KeyboardHandle{
		Keys: Keys{
			Left:   common.CodeArrowLeft,
			Up:     common.CodeArrowUp,
			Right:  common.CodeArrowRight,
			Bottom: common.CodeArrowDown,
		},
		KeyPanSpeed: 7,
		pan:         pan,
	}
}

// HandleKeyDown pans for a mapped key.
//
// Returns:
//   - bool: true when the key was handled and the controls need an update
func (h *KeyboardHandle) HandleKeyDown(e *input.KeyboardEvent) bool {
	switch e.Code {
	case h.Keys.Up:
		h.pan.Pan(0, h.KeyPanSpeed)
	case h.Keys.Bottom:
		h.pan.Pan(0, -h.KeyPanSpeed)
	case h.Keys.Left:
		h.pan.Pan(h.KeyPanSpeed, 0)
	case h.Keys.Right:
		h.pan.Pan(-h.KeyPanSpeed, 0)
	default:
		return false
	}
	return true
}
