package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphericalEpsilon is the margin that keeps the polar angle away from the poles.
const SphericalEpsilon = 0.000001

// Spherical is a point in spherical coordinates. Phi is the polar angle from
// the +Y axis, Theta the azimuth around +Y measured from +Z.
type Spherical struct {
	Radius float64
	Phi    float64
	Theta  float64
}

// SphericalFromVec3 converts the Cartesian vector v into spherical coordinates.
func SphericalFromVec3(v Vec3) Spherical {
	s := Spherical{Radius: v.Len()}
	if s.Radius == 0 {
		return s
	}
	s.Theta = math.Atan2(v.X(), v.Z())
	s.Phi = math.Acos(mgl64.Clamp(v.Y()/s.Radius, -1, 1))
	return s
}

// Vec3 converts s back into a Cartesian vector.
func (s Spherical) Vec3() Vec3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return Vec3{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}
}

// MakeSafe returns s with Phi restricted to (SphericalEpsilon, π - SphericalEpsilon).
func (s Spherical) MakeSafe() Spherical {
	s.Phi = mgl64.Clamp(s.Phi, SphericalEpsilon, math.Pi-SphericalEpsilon)
	return s
}
