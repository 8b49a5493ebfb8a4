package common

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Hex builds an opaque color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		R: float64((rgb>>16)&0xff) / 255,
		G: float64((rgb>>8)&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// Lerp moves the RGB channels toward o by alpha, keeping c's alpha.
func (c Color) Lerp(o Color, alpha float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*alpha,
		G: c.G + (o.G-c.G)*alpha,
		B: c.B + (o.B-c.B)*alpha,
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Float32 returns the color as a float32 array for GPU upload.
func (c Color) Float32() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// Named colors used by the viewer helpers and gizmo.
var (
	White   = Hex(0xffffff)
	Red     = Hex(0xff0000)
	Green   = Hex(0x00ff00)
	Blue    = Hex(0x0000ff)
	Yellow  = Hex(0xffff00)
	Cyan    = Hex(0x00ffff)
	Magenta = Hex(0xff00ff)
	Gray    = Hex(0x787878)
	HotPink = Hex(0xff69b4)
)
