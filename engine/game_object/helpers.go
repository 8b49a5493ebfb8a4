package game_object

import (
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
)

// NewAxesHelper builds the red/green/blue X/Y/Z axis lines of the given length.
func NewAxesHelper(size float64) GameObject {
	root := NewGameObject(WithName("AxesHelper"))
	axes := []struct {
		name  string
		dir   common.Vec3
		color common.Color
	}{
		{"X", common.UnitX, common.Red},
		{"Y", common.UnitY, common.Green},
		{"Z", common.UnitZ, common.Blue},
	}
	for _, a := range axes {
		root.Add(NewGameObject(
			WithName("AxesHelper"+a.name),
			WithLines(&Lines{
				Segments: []common.Vec3{{}, a.dir.Mul(size)},
				Color:    a.color,
			}),
		))
	}
	return root
}

// NewGridHelper builds a square grid on the XZ plane centred at the origin.
//
// Parameters:
//   - size: edge length of the grid
//   - divisions: number of cells per edge
//
// Returns:
//   - GameObject: the grid node
func NewGridHelper(size float64, divisions int) GameObject {
	if divisions < 1 {
		divisions = 1
	}
	half := size / 2
	step := size / float64(divisions)

	segments := make([]common.Vec3, 0, 4*(divisions+1))
	for i := 0; i <= divisions; i++ {
		k := -half + float64(i)*step
		segments = append(segments,
			common.V3(-half, 0, k), common.V3(half, 0, k),
			common.V3(k, 0, -half), common.V3(k, 0, half),
		)
	}
	return NewGameObject(
		WithName("GridHelper"),
		WithLines(&Lines{Segments: segments, Color: common.Hex(0x888888)}),
	)
}

// WireOctahedron returns the twelve edges of an octahedron with the given
// radius as line segments.
func WireOctahedron(radius float64) []common.Vec3 {
	px, nx := common.V3(radius, 0, 0), common.V3(-radius, 0, 0)
	py, ny := common.V3(0, radius, 0), common.V3(0, -radius, 0)
	pz, nz := common.V3(0, 0, radius), common.V3(0, 0, -radius)
	return []common.Vec3{
		px, py, px, ny, px, pz, px, nz,
		nx, py, nx, ny, nx, pz, nx, nz,
		py, pz, pz, ny, ny, nz, nz, py,
	}
}

// WireSphere returns three great circles of a sphere as line segments.
func WireSphere(radius float64, segments int) []common.Vec3 {
	if segments < 3 {
		segments = 3
	}
	out := make([]common.Vec3, 0, 6*segments)
	point := func(plane, i int) common.Vec3 {
		s, c := math.Sincos(float64(i) / float64(segments) * 2 * math.Pi)
		switch plane {
		case 0:
			return common.V3(c*radius, s*radius, 0)
		case 1:
			return common.V3(0, c*radius, s*radius)
		}
		return common.V3(c*radius, 0, s*radius)
	}
	for plane := 0; plane < 3; plane++ {
		for i := 0; i < segments; i++ {
			out = append(out, point(plane, i), point(plane, i+1))
		}
	}
	return out
}
