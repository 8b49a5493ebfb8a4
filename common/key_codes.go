package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyE     = 69  // E key (ASCII)
	KeyR     = 82  // R key (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// DOM-style key code names carried on keyboard events.
const (
	CodeArrowLeft  = "ArrowLeft"
	CodeArrowUp    = "ArrowUp"
	CodeArrowRight = "ArrowRight"
	CodeArrowDown  = "ArrowDown"
	CodeKeyW       = "KeyW"
	CodeKeyE       = "KeyE"
	CodeKeyR       = "KeyR"
	CodeKeyQ       = "KeyQ"
)

// KeyCodeName maps a GLFW key code to its DOM-style code name.
// Unknown keys map to the empty string.
//
// Parameters:
//   - key: the GLFW key code
//
// Returns:
//   - string: the DOM-style code name
func KeyCodeName(key uint32) string {
	switch key {
	case KeyLeft:
		return CodeArrowLeft
	case KeyUp:
		return CodeArrowUp
	case KeyRight:
		return CodeArrowRight
	case KeyDown:
		return CodeArrowDown
	case KeyW:
		return CodeKeyW
	case KeyE:
		return CodeKeyE
	case KeyR:
		return CodeKeyR
	case KeyQ:
		return CodeKeyQ
	}
	return ""
}
