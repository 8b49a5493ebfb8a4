package transform

import (
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
)

// HandleKind distinguishes solid handles from line handles.
type HandleKind int

const (
	KindMesh HandleKind = iota
	KindLine
)

// HandleTag marks handles that get special treatment during Update.
type HandleTag int

const (
	TagNone HandleTag = iota
	// TagForward and TagBackward are the two arrowheads of an axis; only the
	// one on the camera's side is shown.
	TagForward
	TagBackward
	// TagHelper handles are drag guides, shown only while relevant.
	TagHelper
)

// HandleSpec is one entry of a handle table. Position, Rotation and Scale are
// baked into the geometry when the gizmo is built; a zero Scale means unit.
type HandleSpec struct {
	Name     Axis
	Kind     HandleKind
	Geometry Geometry
	Material Material
	Position common.Vec3
	Rotation common.Euler
	Scale    common.Vec3
	Tag      HandleTag
}

// Bake returns the geometry with the spec's local transform applied.
func (s HandleSpec) Bake() Geometry {
	scale := s.Scale
	if scale == (common.Vec3{}) {
		scale = common.Splat(1)
	}
	return s.Geometry.Transformed(common.ComposeMat4(s.Position, common.QuatFromEuler(s.Rotation), scale))
}

const halfPi = math.Pi / 2

var (
	arrowGeometry       = Cylinder(0, 0.05, 0.2, 12)
	scaleHandleGeometry = Box(0.125, 0.125, 0.125)
	lineGeometry        = UnitLine()

	// helper axis lines span two thousand units through the start point
	helperLineScale = common.V3(1e6, 1, 1)
	planeLineScale  = common.V3(0.125, 1, 1)
)

// gizmoTables are the visible handles per mode.
var gizmoTables = map[Mode][]HandleSpec{
	ModeTranslate: {
		{Name: AxisX, Geometry: arrowGeometry, Material: matRed, Position: common.V3(1, 0, 0), Rotation: common.Euler{Z: -halfPi}, Tag: TagForward},
		{Name: AxisX, Geometry: arrowGeometry, Material: matRed, Position: common.V3(1, 0, 0), Rotation: common.Euler{Z: halfPi}, Tag: TagBackward},
		{Name: AxisX, Kind: KindLine, Geometry: lineGeometry, Material: matLineRed},

		{Name: AxisY, Geometry: arrowGeometry, Material: matGreen, Position: common.V3(0, 1, 0), Tag: TagForward},
		{Name: AxisY, Geometry: arrowGeometry, Material: matGreen, Position: common.V3(0, 1, 0), Rotation: common.Euler{X: math.Pi}, Tag: TagBackward},
		{Name: AxisY, Kind: KindLine, Geometry: lineGeometry, Material: matLineGreen, Rotation: common.Euler{Z: halfPi}},

		{Name: AxisZ, Geometry: arrowGeometry, Material: matBlue, Position: common.V3(0, 0, 1), Rotation: common.Euler{X: halfPi}, Tag: TagForward},
		{Name: AxisZ, Geometry: arrowGeometry, Material: matBlue, Position: common.V3(0, 0, 1), Rotation: common.Euler{X: -halfPi}, Tag: TagBackward},
		{Name: AxisZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineBlue, Rotation: common.Euler{Y: -halfPi}},

		{Name: AxisXYZ, Geometry: Octahedron(0.1), Material: matWhiteTransparent},

		{Name: AxisXY, Geometry: PlaneQuad(0.295, 0.295), Material: matYellowTransparent, Position: common.V3(0.15, 0.15, 0)},
		{Name: AxisXY, Kind: KindLine, Geometry: lineGeometry, Material: matLineYellow, Position: common.V3(0.18, 0.3, 0), Scale: planeLineScale},
		{Name: AxisXY, Kind: KindLine, Geometry: lineGeometry, Material: matLineYellow, Position: common.V3(0.3, 0.18, 0), Rotation: common.Euler{Z: halfPi}, Scale: planeLineScale},

		{Name: AxisYZ, Geometry: PlaneQuad(0.295, 0.295), Material: matCyanTransparent, Position: common.V3(0, 0.15, 0.15), Rotation: common.Euler{Y: halfPi}},
		{Name: AxisYZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineCyan, Position: common.V3(0, 0.18, 0.3), Rotation: common.Euler{Z: halfPi}, Scale: planeLineScale},
		{Name: AxisYZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineCyan, Position: common.V3(0, 0.3, 0.18), Rotation: common.Euler{Y: -halfPi}, Scale: planeLineScale},

		{Name: AxisXZ, Geometry: PlaneQuad(0.295, 0.295), Material: matMagentaTransparent, Position: common.V3(0.15, 0, 0.15), Rotation: common.Euler{X: -halfPi}},
		{Name: AxisXZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineMagenta, Position: common.V3(0.18, 0, 0.3), Scale: planeLineScale},
		{Name: AxisXZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineMagenta, Position: common.V3(0.3, 0, 0.18), Rotation: common.Euler{Y: -halfPi}, Scale: planeLineScale},
	},

	ModeRotate: {
		{Name: AxisX, Kind: KindLine, Geometry: Circle(1, 0.5), Material: matLineRed},
		{Name: AxisX, Geometry: Octahedron(0.04), Material: matRed, Position: common.V3(0, 0, 0.99), Scale: common.V3(1, 3, 1)},

		{Name: AxisY, Kind: KindLine, Geometry: Circle(1, 0.5), Material: matLineGreen, Rotation: common.Euler{Z: -halfPi}},
		{Name: AxisY, Geometry: Octahedron(0.04), Material: matGreen, Position: common.V3(0, 0, 0.99), Scale: common.V3(3, 1, 1)},

		{Name: AxisZ, Kind: KindLine, Geometry: Circle(1, 0.5), Material: matLineBlue, Rotation: common.Euler{Y: halfPi}},
		{Name: AxisZ, Geometry: Octahedron(0.04), Material: matBlue, Position: common.V3(0.99, 0, 0), Scale: common.V3(1, 3, 1)},

		{Name: AxisE, Kind: KindLine, Geometry: Circle(1.25, 1), Material: matLineYellowTransparent, Rotation: common.Euler{Y: halfPi}},
		{Name: AxisE, Geometry: Cylinder(0.03, 0, 0.15, 4), Material: matLineYellowTransparent, Position: common.V3(1.17, 0, 0), Rotation: common.Euler{Z: -halfPi}, Scale: common.V3(1, 1, 0.001)},
		{Name: AxisE, Geometry: Cylinder(0.03, 0, 0.15, 4), Material: matLineYellowTransparent, Position: common.V3(-1.17, 0, 0), Rotation: common.Euler{Z: halfPi}, Scale: common.V3(1, 1, 0.001)},
		{Name: AxisE, Geometry: Cylinder(0.03, 0, 0.15, 4), Material: matLineYellowTransparent, Position: common.V3(0, -1.17, 0), Rotation: common.Euler{X: math.Pi}, Scale: common.V3(1, 1, 0.001)},
		{Name: AxisE, Geometry: Cylinder(0.03, 0, 0.15, 4), Material: matLineYellowTransparent, Position: common.V3(0, 1.17, 0), Scale: common.V3(1, 1, 0.001)},

		{Name: AxisXYZE, Kind: KindLine, Geometry: Circle(1, 1), Material: matLineGray, Rotation: common.Euler{Y: halfPi}},
	},

	ModeScale: {
		{Name: AxisX, Geometry: scaleHandleGeometry, Material: matRed, Position: common.V3(0.8, 0, 0), Rotation: common.Euler{Z: -halfPi}},
		{Name: AxisX, Kind: KindLine, Geometry: lineGeometry, Material: matLineRed, Scale: common.V3(0.8, 1, 1)},

		{Name: AxisY, Geometry: scaleHandleGeometry, Material: matGreen, Position: common.V3(0, 0.8, 0)},
		{Name: AxisY, Kind: KindLine, Geometry: lineGeometry, Material: matLineGreen, Rotation: common.Euler{Z: halfPi}, Scale: common.V3(0.8, 1, 1)},

		{Name: AxisZ, Geometry: scaleHandleGeometry, Material: matBlue, Position: common.V3(0, 0, 0.8), Rotation: common.Euler{X: halfPi}},
		{Name: AxisZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineBlue, Rotation: common.Euler{Y: -halfPi}, Scale: common.V3(0.8, 1, 1)},

		{Name: AxisXY, Geometry: scaleHandleGeometry, Material: matYellowTransparent, Position: common.V3(0.85, 0.85, 0), Scale: common.V3(2, 2, 0.2)},
		{Name: AxisXY, Kind: KindLine, Geometry: lineGeometry, Material: matLineYellow, Position: common.V3(0.855, 0.98, 0), Scale: planeLineScale},
		{Name: AxisXY, Kind: KindLine, Geometry: lineGeometry, Material: matLineYellow, Position: common.V3(0.98, 0.855, 0), Rotation: common.Euler{Z: halfPi}, Scale: planeLineScale},

		{Name: AxisYZ, Geometry: scaleHandleGeometry, Material: matCyanTransparent, Position: common.V3(0, 0.85, 0.85), Scale: common.V3(0.2, 2, 2)},
		{Name: AxisYZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineCyan, Position: common.V3(0, 0.855, 0.98), Rotation: common.Euler{Z: halfPi}, Scale: planeLineScale},
		{Name: AxisYZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineCyan, Position: common.V3(0, 0.98, 0.855), Rotation: common.Euler{Y: -halfPi}, Scale: planeLineScale},

		{Name: AxisXZ, Geometry: scaleHandleGeometry, Material: matMagentaTransparent, Position: common.V3(0.85, 0, 0.85), Scale: common.V3(2, 0.2, 2)},
		{Name: AxisXZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineMagenta, Position: common.V3(0.855, 0, 0.98), Scale: planeLineScale},
		{Name: AxisXZ, Kind: KindLine, Geometry: lineGeometry, Material: matLineMagenta, Position: common.V3(0.98, 0, 0.855), Rotation: common.Euler{Y: -halfPi}, Scale: planeLineScale},

		{Name: AxisXYZX, Geometry: Box(0.125, 0.125, 0.125), Material: matWhiteTransparent, Position: common.V3(1.1, 0, 0)},
		{Name: AxisXYZY, Geometry: Box(0.125, 0.125, 0.125), Material: matWhiteTransparent, Position: common.V3(0, 1.1, 0)},
		{Name: AxisXYZZ, Geometry: Box(0.125, 0.125, 0.125), Material: matWhiteTransparent, Position: common.V3(0, 0, 1.1)},
	},
}

// pickerTables are the enlarged, never drawn hit proxies per mode.
var pickerTables = map[Mode][]HandleSpec{
	ModeTranslate: {
		{Name: AxisX, Geometry: Cylinder(0.2, 0, 1, 4), Material: matInvisible, Position: common.V3(0.6, 0, 0), Rotation: common.Euler{Z: -halfPi}},
		{Name: AxisY, Geometry: Cylinder(0.2, 0, 1, 4), Material: matInvisible, Position: common.V3(0, 0.6, 0)},
		{Name: AxisZ, Geometry: Cylinder(0.2, 0, 1, 4), Material: matInvisible, Position: common.V3(0, 0, 0.6), Rotation: common.Euler{X: halfPi}},
		{Name: AxisXYZ, Geometry: Octahedron(0.2), Material: matInvisible},
		{Name: AxisXY, Geometry: PlaneQuad(0.4, 0.4), Material: matInvisible, Position: common.V3(0.2, 0.2, 0)},
		{Name: AxisYZ, Geometry: PlaneQuad(0.4, 0.4), Material: matInvisible, Position: common.V3(0, 0.2, 0.2), Rotation: common.Euler{Y: halfPi}},
		{Name: AxisXZ, Geometry: PlaneQuad(0.4, 0.4), Material: matInvisible, Position: common.V3(0.2, 0, 0.2), Rotation: common.Euler{X: -halfPi}},
	},

	ModeRotate: {
		{Name: AxisX, Geometry: Torus(1, 0.1, 4, 24), Material: matInvisible, Rotation: common.Euler{Y: -halfPi, Z: -halfPi}},
		{Name: AxisY, Geometry: Torus(1, 0.1, 4, 24), Material: matInvisible, Rotation: common.Euler{X: halfPi}},
		{Name: AxisZ, Geometry: Torus(1, 0.1, 4, 24), Material: matInvisible, Rotation: common.Euler{Z: -halfPi}},
		{Name: AxisE, Geometry: Torus(1.25, 0.1, 2, 24), Material: matInvisible},
		{Name: AxisXYZE, Geometry: Sphere(0.7, 10, 8), Material: matInvisible},
	},

	ModeScale: {
		{Name: AxisX, Geometry: Cylinder(0.2, 0, 0.8, 4), Material: matInvisible, Position: common.V3(0.5, 0, 0), Rotation: common.Euler{Z: -halfPi}},
		{Name: AxisY, Geometry: Cylinder(0.2, 0, 0.8, 4), Material: matInvisible, Position: common.V3(0, 0.5, 0)},
		{Name: AxisZ, Geometry: Cylinder(0.2, 0, 0.8, 4), Material: matInvisible, Position: common.V3(0, 0, 0.5), Rotation: common.Euler{X: halfPi}},
		{Name: AxisXY, Geometry: scaleHandleGeometry, Material: matInvisible, Position: common.V3(0.85, 0.85, 0), Scale: common.V3(3, 3, 0.2)},
		{Name: AxisYZ, Geometry: scaleHandleGeometry, Material: matInvisible, Position: common.V3(0, 0.85, 0.85), Scale: common.V3(0.2, 3, 3)},
		{Name: AxisXZ, Geometry: scaleHandleGeometry, Material: matInvisible, Position: common.V3(0.85, 0, 0.85), Scale: common.V3(3, 0.2, 3)},
		{Name: AxisXYZX, Geometry: Box(0.2, 0.2, 0.2), Material: matInvisible, Position: common.V3(1.1, 0, 0)},
		{Name: AxisXYZY, Geometry: Box(0.2, 0.2, 0.2), Material: matInvisible, Position: common.V3(0, 1.1, 0)},
		{Name: AxisXYZZ, Geometry: Box(0.2, 0.2, 0.2), Material: matInvisible, Position: common.V3(0, 0, 1.1)},
	},
}

var (
	helperAxisX = HandleSpec{Name: AxisX, Kind: KindLine, Geometry: lineGeometry, Material: matHelper, Position: common.V3(-1e3, 0, 0), Scale: helperLineScale, Tag: TagHelper}
	helperAxisY = HandleSpec{Name: AxisY, Kind: KindLine, Geometry: lineGeometry, Material: matHelper, Position: common.V3(0, -1e3, 0), Rotation: common.Euler{Z: halfPi}, Scale: helperLineScale, Tag: TagHelper}
	helperAxisZ = HandleSpec{Name: AxisZ, Kind: KindLine, Geometry: lineGeometry, Material: matHelper, Position: common.V3(0, 0, -1e3), Rotation: common.Euler{Y: -halfPi}, Scale: helperLineScale, Tag: TagHelper}
)

// helperTables are the drag guides per mode.
var helperTables = map[Mode][]HandleSpec{
	ModeTranslate: {
		{Name: axisStart, Geometry: Octahedron(0.01), Material: matHelper, Tag: TagHelper},
		{Name: axisEnd, Geometry: Octahedron(0.01), Material: matHelper, Tag: TagHelper},
		{Name: axisDelta, Kind: KindLine, Geometry: DiagonalLine(), Material: matHelper, Tag: TagHelper},
		helperAxisX,
		helperAxisY,
		helperAxisZ,
	},

	ModeRotate: {
		{Name: axisAxis, Kind: KindLine, Geometry: lineGeometry, Material: matHelper, Position: common.V3(-1e3, 0, 0), Scale: helperLineScale, Tag: TagHelper},
	},

	ModeScale: {
		helperAxisX,
		helperAxisY,
		helperAxisZ,
	},
}
