package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// quatOppositeEpsilon is how close from·to may get to -1 before the rotation
// axis is treated as undefined.
const quatOppositeEpsilon = 1e-12

// Quat is a rotation quaternion. The zero value is not a valid rotation; use
// mgl64.QuatIdent.
type Quat = mgl64.Quat

// QuatFromUnitVectors returns the shortest rotation that maps the unit vector from onto to.
// Opposite vectors rotate half a turn around an axis perpendicular to from.
//
// Parameters:
//   - from: source direction, must be unit length
//   - to: destination direction, must be unit length
//
// Returns:
//   - Quat: the normalized rotation
func QuatFromUnitVectors(from, to Vec3) Quat {
	r := from.Dot(to) + 1
	if r < quatOppositeEpsilon {
		return mgl64.QuatBetweenVectors(from, to)
	}
	return Quat{W: r, V: from.Cross(to)}.Normalize()
}

// QuatFromEuler returns the rotation described by e using XYZ intrinsic order.
func QuatFromEuler(e Euler) Quat {
	return mgl64.AnglesToQuat(e.X, e.Y, e.Z, mgl64.XYZ)
}

// Euler is a rotation expressed as XYZ-ordered angles in radians.
type Euler struct {
	X, Y, Z float64
}

// EulerFromQuat converts q to XYZ-ordered Euler angles.
func EulerFromQuat(q Quat) Euler {
	m := q.Normalize().Mat4()
	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m22, m23 := m.At(1, 1), m.At(1, 2)
	m32, m33 := m.At(2, 1), m.At(2, 2)

	e := Euler{Y: math.Asin(mgl64.Clamp(m13, -1, 1))}
	if math.Abs(m13) < 0.9999999 {
		e.X = math.Atan2(-m23, m33)
		e.Z = math.Atan2(-m12, m11)
	} else {
		e.X = math.Atan2(m32, m22)
	}
	return e
}

// Component returns the angle at index i (0 = X, 1 = Y, 2 = Z).
func (e Euler) Component(i int) float64 {
	return Vec3{e.X, e.Y, e.Z}[i]
}

// WithComponent returns a copy of e with the angle at index i replaced.
func (e Euler) WithComponent(i int, value float64) Euler {
	v := Vec3{e.X, e.Y, e.Z}
	v[i] = value
	return Euler{v[0], v[1], v[2]}
}
