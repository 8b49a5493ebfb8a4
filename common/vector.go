package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector used for screen-space pointer coordinates.
type Vec2 = mgl64.Vec2

// Vec3 is the 3D vector used throughout the scene graph and controls.
type Vec3 = mgl64.Vec3

// Unit axis vectors.
var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// V2 is shorthand for constructing a Vec2.
func V2(x, y float64) Vec2 { return Vec2{x, y} }

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Splat returns a vector with all three components set to s.
func Splat(s float64) Vec3 { return Vec3{s, s, s} }

// MulComponents returns the component-wise product of a and b.
func MulComponents(a, b Vec3) Vec3 { return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]} }

// DivComponents returns the component-wise quotient of a and b.
func DivComponents(a, b Vec3) Vec3 { return Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]} }

// AngleBetween returns the unsigned angle in radians between a and b.
// If either vector has zero length the angle is π/2.
func AngleBetween(a, b Vec3) float64 {
	denominator := math.Sqrt(a.LenSqr() * b.LenSqr())
	if denominator == 0 {
		return math.Pi / 2
	}
	return math.Acos(mgl64.Clamp(a.Dot(b)/denominator, -1, 1))
}

// Lerp linearly interpolates between a and b by alpha.
func Lerp(a, b Vec3, alpha float64) Vec3 {
	return a.Add(b.Sub(a).Mul(alpha))
}
