package transform

import "strings"

// Mode selects which transform the gizmo applies.
type Mode string

const (
	ModeTranslate Mode = "translate"
	ModeRotate    Mode = "rotate"
	ModeScale     Mode = "scale"
)

// Modes lists every mode in handle-table order.
var Modes = []Mode{ModeTranslate, ModeRotate, ModeScale}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeTranslate || m == ModeRotate || m == ModeScale
}

// Space is the frame the gizmo axes are aligned to.
type Space string

const (
	SpaceWorld Space = "world"
	SpaceLocal Space = "local"
)

// Valid reports whether s is a known space.
func (s Space) Valid() bool {
	return s == SpaceWorld || s == SpaceLocal
}

// Axis names a handle. Compound names (XY, XYZ, ...) constrain to several
// axes; E rotates about the view direction and XYZE rotates freely.
type Axis string

const (
	AxisNone Axis = ""
	AxisX    Axis = "X"
	AxisY    Axis = "Y"
	AxisZ    Axis = "Z"
	AxisXY   Axis = "XY"
	AxisYZ   Axis = "YZ"
	AxisXZ   Axis = "XZ"
	AxisXYZ  Axis = "XYZ"
	AxisE    Axis = "E"
	AxisXYZE Axis = "XYZE"

	// uniform scale handles at the end of each axis
	AxisXYZX Axis = "XYZX"
	AxisXYZY Axis = "XYZY"
	AxisXYZZ Axis = "XYZZ"

	// helper-only names
	axisStart Axis = "START"
	axisEnd   Axis = "END"
	axisDelta Axis = "DELTA"
	axisAxis  Axis = "AXIS"
)

// Has reports whether the axis name contains sub, as in "XY" has "X".
func (a Axis) Has(sub string) bool {
	return strings.Contains(string(a), sub)
}

// effectiveSpace is the space a drag actually works in: scale is always
// local, and view-relative handles are always world.
func effectiveSpace(mode Mode, axis Axis, space Space) Space {
	if mode == ModeScale {
		return SpaceLocal
	}
	if axis == AxisE || axis == AxisXYZE || axis == AxisXYZ {
		return SpaceWorld
	}
	return space
}
