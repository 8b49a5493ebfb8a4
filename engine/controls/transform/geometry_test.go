package transform

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/stretchr/testify/assert"
)

var down = common.V3(0, 0, -1)

func TestGeometryIntersectNearestFace(t *testing.T) {
	tests := []struct {
		name string
		geom Geometry
		want float64
	}{
		{"box", Box(1, 1, 1), 4.5},
		{"octahedron", Octahedron(1), 4},
		{"sphere", Sphere(1, 32, 16), 4},
		{"quad", PlaneQuad(1, 1), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.geom.Intersect(common.Ray{Origin: common.V3(0.01, 0.02, 5), Direction: down})
			assert.True(t, ok)
			assert.InDelta(t, tt.want, got, 0.05)
		})
	}
}

func TestGeometryMiss(t *testing.T) {
	_, ok := Box(1, 1, 1).Intersect(common.Ray{Origin: common.V3(2, 0, 5), Direction: down})
	assert.False(t, ok)

	_, ok = UnitLine().Intersect(common.Ray{Origin: common.V3(0.5, 0, 5), Direction: down})
	assert.False(t, ok, "lines are never hit")
}

func TestCylinderPointsAlongY(t *testing.T) {
	cone := Cylinder(0.2, 0, 1, 4)
	for _, v := range cone.Triangles {
		assert.LessOrEqual(t, math.Abs(v.Y()), 0.5+1e-12)
	}

	_, ok := cone.Intersect(common.Ray{Origin: common.V3(0, 5, 0.01), Direction: common.V3(0, -1, 0)})
	assert.True(t, ok, "the wide end is capped")
}

func TestTorusLiesInXYPlane(t *testing.T) {
	torus := Torus(1, 0.1, 4, 24)
	for _, v := range torus.Triangles {
		assert.LessOrEqual(t, math.Abs(v.Z()), 0.1+1e-12)
		r := math.Hypot(v.X(), v.Y())
		assert.InDelta(t, 1, r, 0.1+1e-12)
	}
}

func TestCircleArcInYZPlane(t *testing.T) {
	half := Circle(1, 0.5)
	assert.Len(t, half.Segments, 64)
	for _, v := range half.Segments {
		assert.InDelta(t, 0, v.X(), 1e-12)
		assert.InDelta(t, 1, math.Hypot(v.Y(), v.Z()), 1e-12)
		assert.GreaterOrEqual(t, v.Z(), -1e-12)
	}
}

func TestEdgesIncludeSegmentsAndTriangleEdges(t *testing.T) {
	g := Geometry{
		Segments:  UnitLine().Segments,
		Triangles: PlaneQuad(1, 1).Triangles,
	}
	edges := g.Edges()
	assert.Len(t, edges, 2+2*6)
	assert.Equal(t, common.UnitX, edges[1])
}

func TestTransformedBakesSpec(t *testing.T) {
	spec := HandleSpec{
		Geometry: UnitLine(),
		Position: common.V3(0, 1, 0),
		Rotation: common.Euler{Z: halfPi},
		Scale:    common.V3(2, 1, 1),
	}
	baked := spec.Bake()
	assert.InDelta(t, 0, baked.Segments[0].Sub(common.V3(0, 1, 0)).Len(), 1e-12)
	assert.InDelta(t, 0, baked.Segments[1].Sub(common.V3(0, 3, 0)).Len(), 1e-12)
}
