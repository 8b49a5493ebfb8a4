package orbit

import (
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
)

const twoPi = 2 * math.Pi

// RotationDelta accumulates pending orbit angles. Rotation input writes into
// it; SphericalState drains it on the next update.
type RotationDelta interface {
	// RotateLeft subtracts angle from the pending azimuth delta.
	RotateLeft(angle float64)

	// RotateUp subtracts angle from the pending polar delta.
	RotateUp(angle float64)
}

// SphericalState holds the camera position as spherical coordinates around
// the target together with the pending rotation delta.
//
// The alignment rotation that maps the camera's up vector onto +Y is captured
// once at construction and reused for every conversion.
type SphericalState struct {
	// MinDistance and MaxDistance bound the radius (perspective dolly only).
	MinDistance float64
	MaxDistance float64

	// MinPolarAngle and MaxPolarAngle bound the polar angle, within [0, π].
	MinPolarAngle float64
	MaxPolarAngle float64

	// MinAzimuthAngle and MaxAzimuthAngle bound the azimuth. Both must be
	// finite for the bound to apply; the interval must lie in [-2π, 2π] and be
	// narrower than 2π.
	MinAzimuthAngle float64
	MaxAzimuthAngle float64

	damping *Damping

	spherical common.Spherical
	delta     common.Spherical

	quat        common.Quat
	quatInverse common.Quat
}

var _ RotationDelta = &SphericalState{}

// NewSphericalState creates the state for a camera with the given up vector.
//
// Parameters:
//   - up: the camera's up vector, used as the orbit axis
//   - damping: the shared inertia setting
//
// Returns:
//   - *SphericalState: state with unbounded distance and azimuth
func NewSphericalState(up common.Vec3, damping *Damping) *SphericalState {
	q := common.QuatFromUnitVectors(up.Normalize(), common.UnitY)
	return &SphericalState{
		MinDistance:     0,
		MaxDistance:     math.Inf(1),
		MinPolarAngle:   0,
		MaxPolarAngle:   math.Pi,
		MinAzimuthAngle: math.Inf(-1),
		MaxAzimuthAngle: math.Inf(1),
		damping:         damping,
		quat:            q,
		quatInverse:     q.Conjugate(),
	}
}

// AlignSpherical loads the camera-minus-target offset into the stored
// spherical coordinate, rotated into the y-up frame.
func (s *SphericalState) AlignSpherical(offset common.Vec3) {
	s.spherical = common.SphericalFromVec3(s.quat.Rotate(offset))
}

// Spherical returns the stored coordinate.
func (s *SphericalState) Spherical() common.Spherical { return s.spherical }

// SetSpherical replaces the stored coordinate.
func (s *SphericalState) SetSpherical(sp common.Spherical) { s.spherical = sp }

// Delta returns the pending azimuth and polar deltas.
func (s *SphericalState) Delta() (theta, phi float64) {
	return s.delta.Theta, s.delta.Phi
}

func (s *SphericalState) RotateLeft(angle float64) { s.delta.Theta -= angle }
func (s *SphericalState) RotateUp(angle float64)   { s.delta.Phi -= angle }

// Restrict clamps the stored azimuth, polar angle and radius to their limits.
// The azimuth window may cross the ±π seam, in which case the angle is pulled
// to whichever bound is nearer. Restrict is idempotent.
func (s *SphericalState) Restrict() {
	if !math.IsInf(s.MinAzimuthAngle, 0) && !math.IsInf(s.MaxAzimuthAngle, 0) {
		s.spherical.Theta = restrictTheta(s.MinAzimuthAngle, s.MaxAzimuthAngle, s.spherical.Theta)
	}

	s.spherical.Phi = mgl64.Clamp(s.spherical.Phi, s.MinPolarAngle, s.MaxPolarAngle)
	s.spherical = s.spherical.MakeSafe()

	s.spherical.Radius = mgl64.Clamp(s.spherical.Radius, s.MinDistance, s.MaxDistance)
}

// UpdateObjectTransform applies the pending delta, scales the radius, restricts
// the result and writes the camera pose around target. The delta then decays
// (damping) or clears.
//
// Parameters:
//   - cam: the camera to position
//   - target: the orbit pivot
//   - scale: the dolly multiplier for the radius this frame
func (s *SphericalState) UpdateObjectTransform(cam camera.Camera, target common.Vec3, scale float64) {
	var theta, phi float64
	theta, s.delta.Theta = s.damping.Step(s.delta.Theta)
	phi, s.delta.Phi = s.damping.Step(s.delta.Phi)
	s.spherical.Theta += theta
	s.spherical.Phi += phi

	s.spherical.Radius *= scale
	s.Restrict()

	offset := s.quatInverse.Rotate(s.spherical.Vec3())
	cam.SetPosition(target.Add(offset))
	cam.LookAt(target)
}

// PolarAngle returns the current polar angle in radians.
func (s *SphericalState) PolarAngle() float64 { return s.spherical.Phi }

// AzimuthalAngle returns the current azimuth in radians.
func (s *SphericalState) AzimuthalAngle() float64 { return s.spherical.Theta }

// SetPolarAngle stages the shortest delta that moves the polar angle to value.
func (s *SphericalState) SetPolarAngle(value float64) {
	s.delta.Phi = shortestAngleDelta(s.spherical.Phi, value)
}

// SetAzimuthalAngle stages the shortest delta that moves the azimuth to value.
func (s *SphericalState) SetAzimuthalAngle(value float64) {
	s.delta.Theta = shortestAngleDelta(s.spherical.Theta, value)
}

func moduloWrapAround(offset, capacity float64) float64 {
	return math.Mod(math.Mod(offset, capacity)+capacity, capacity)
}

// shortestAngleDelta returns the signed delta from current to value taking the
// short way around the circle.
func shortestAngleDelta(current, value float64) float64 {
	next := moduloWrapAround(value, twoPi)
	if current < 0 {
		current += twoPi
	}
	dist := math.Abs(next - current)
	if twoPi-dist < dist {
		if next < current {
			next += twoPi
		} else {
			current += twoPi
		}
	}
	return next - current
}

func restrictTheta(lo, hi, theta float64) float64 {
	if lo < -math.Pi {
		lo += twoPi
	} else if lo > math.Pi {
		lo -= twoPi
	}

	if hi < -math.Pi {
		hi += twoPi
	} else if hi > math.Pi {
		hi -= twoPi
	}

	if lo <= hi {
		return math.Max(lo, math.Min(hi, theta))
	}
	if theta > (lo+hi)/2 {
		return math.Max(lo, theta)
	}
	return math.Min(hi, theta)
}
