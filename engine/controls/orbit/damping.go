package orbit

import (
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
)

// DampingEpsilon is the residual below which a damped delta is applied in full
// and cleared, so inertia settles to exactly zero instead of decaying forever.
const DampingEpsilon = 1e-4

// Damping is the inertia setting shared by the rotation and pan deltas.
type Damping struct {
	Enabled bool
	Factor  float64
}

// Step splits a pending scalar delta into the part applied this tick and the
// part carried to the next one.
//
// Parameters:
//   - delta: the pending delta
//
// Returns:
//   - applied: the amount to apply now
//   - remaining: the pending delta after this tick
func (d *Damping) Step(delta float64) (applied, remaining float64) {
	if !d.Enabled {
		return delta, 0
	}
	applied = delta * d.Factor
	remaining = delta * (1 - d.Factor)
	if math.Abs(remaining) < DampingEpsilon {
		return delta, 0
	}
	return applied, remaining
}

// StepVec is Step for a vector delta, snapping on the vector's length.
func (d *Damping) StepVec(delta common.Vec3) (applied, remaining common.Vec3) {
	if !d.Enabled {
		return delta, common.Vec3{}
	}
	applied = delta.Mul(d.Factor)
	remaining = delta.Mul(1 - d.Factor)
	if remaining.Len() < DampingEpsilon {
		return delta, common.Vec3{}
	}
	return applied, remaining
}
