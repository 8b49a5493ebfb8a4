package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a 4x4 affine transform stored in column-major order, matching the
// layout of the float32 GPU helpers in this package.
type Mat4 = mgl64.Mat4

// ComposeMat4 builds a transform from a translation, rotation and scale.
//
// Parameters:
//   - position: translation
//   - q: rotation
//   - scale: per-axis scale applied before the rotation
//
// Returns:
//   - Mat4: the composed matrix T * R * S
func ComposeMat4(position Vec3, q Quat, scale Vec3) Mat4 {
	return mgl64.Translate3D(position.Elem()).
		Mul4(q.Mat4()).
		Mul4(mgl64.Scale3D(scale.Elem()))
}

// Decompose splits m into translation, rotation and scale. A negative
// determinant is attributed to the X scale.
//
// Returns:
//   - Vec3: translation
//   - Quat: rotation
//   - Vec3: scale
func Decompose(m Mat4) (Vec3, Quat, Vec3) {
	sx, sy, sz := mgl64.Extract3DScale(m)
	if m.Det() < 0 {
		sx = -sx
	}

	rotation := mgl64.Mat4FromCols(
		m.Col(0).Mul(1/sx),
		m.Col(1).Mul(1/sy),
		m.Col(2).Mul(1/sz),
		mgl64.Vec4{0, 0, 0, 1},
	)
	return Position(m), mgl64.Mat4ToQuat(rotation).Normalize(), Vec3{sx, sy, sz}
}

// Invert returns the inverse of m. A singular matrix yields the zero matrix and false.
func Invert(m Mat4) (Mat4, bool) {
	inv := m.Inv()
	if inv == (Mat4{}) {
		return inv, false
	}
	return inv, true
}

// Column returns the first three components of column i.
func Column(m Mat4, i int) Vec3 { return m.Col(i).Vec3() }

// Position returns the translation part of m.
func Position(m Mat4) Vec3 { return m.Col(3).Vec3() }

// LookAtRotation returns a rotation matrix whose +Z axis points from target
// towards eye, using up to resolve the roll. Degenerate inputs are nudged so the
// result is always a valid rotation.
//
// Parameters:
//   - eye: the viewpoint
//   - target: the point being looked at
//   - up: the reference up direction
//
// Returns:
//   - Mat4: a pure rotation matrix (no translation)
func LookAtRotation(eye, target, up Vec3) Mat4 {
	z := eye.Sub(target)
	if z.LenSqr() == 0 {
		z[2] = 1
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.LenSqr() == 0 {
		// up and z are parallel
		if math.Abs(up[2]) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl64.Mat4FromCols(x.Vec4(0), y.Vec4(0), z.Vec4(0), mgl64.Vec4{0, 0, 0, 1})
}

// Float32 converts m to the float32 layout used by GPU buffers.
func Float32(m Mat4) [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
