package transform

import (
	"math"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is a handle shape: triangles for solid handles, segments for line
// handles. Triangles holds three vertices per face and Segments two vertices
// per line.
type Geometry struct {
	Triangles []common.Vec3
	Segments  []common.Vec3
}

// Transformed returns a copy of g with every vertex multiplied by m.
func (g Geometry) Transformed(m common.Mat4) Geometry {
	out := Geometry{
		Triangles: make([]common.Vec3, len(g.Triangles)),
		Segments:  make([]common.Vec3, len(g.Segments)),
	}
	for i, v := range g.Triangles {
		out.Triangles[i] = mgl64.TransformCoordinate(v, m)
	}
	for i, v := range g.Segments {
		out.Segments[i] = mgl64.TransformCoordinate(v, m)
	}
	return out
}

// Edges returns the line segments that draw g: its segments followed by the
// edges of each triangle.
func (g Geometry) Edges() []common.Vec3 {
	out := make([]common.Vec3, 0, len(g.Segments)+len(g.Triangles)*2)
	out = append(out, g.Segments...)
	for i := 0; i+2 < len(g.Triangles); i += 3 {
		a, b, c := g.Triangles[i], g.Triangles[i+1], g.Triangles[i+2]
		out = append(out, a, b, b, c, c, a)
	}
	return out
}

// Intersect returns the nearest ray parameter at which r hits a triangle of g.
func (g Geometry) Intersect(r common.Ray) (float64, bool) {
	best := math.Inf(1)
	hit := false
	for i := 0; i+2 < len(g.Triangles); i += 3 {
		if t, ok := r.IntersectTriangle(g.Triangles[i], g.Triangles[i+1], g.Triangles[i+2]); ok && t < best {
			best = t
			hit = true
		}
	}
	return best, hit
}

// quad appends the two triangles of the quad (a, b, c, d).
func quad(tris []common.Vec3, a, b, c, d common.Vec3) []common.Vec3 {
	return append(tris, a, b, d, b, c, d)
}

// Cylinder builds a capped cylinder along +Y centred on the origin. A zero
// radius on either end makes a cone.
func Cylinder(radiusTop, radiusBottom, height float64, radialSegments int) Geometry {
	half := height / 2
	ring := func(radius, y float64) []common.Vec3 {
		pts := make([]common.Vec3, radialSegments+1)
		for i := 0; i <= radialSegments; i++ {
			theta := float64(i) / float64(radialSegments) * 2 * math.Pi
			sin, cos := math.Sincos(theta)
			pts[i] = common.V3(radius*sin, y, radius*cos)
		}
		return pts
	}
	top := ring(radiusTop, half)
	bottom := ring(radiusBottom, -half)

	var tris []common.Vec3
	for i := 0; i < radialSegments; i++ {
		tris = quad(tris, top[i], bottom[i], bottom[i+1], top[i+1])
		if radiusTop > 0 {
			tris = append(tris, common.V3(0, half, 0), top[i], top[i+1])
		}
		if radiusBottom > 0 {
			tris = append(tris, common.V3(0, -half, 0), bottom[i+1], bottom[i])
		}
	}
	return Geometry{Triangles: tris}
}

// Octahedron builds a regular octahedron with its vertices on the axes.
func Octahedron(radius float64) Geometry {
	px, nx := common.V3(radius, 0, 0), common.V3(-radius, 0, 0)
	py, ny := common.V3(0, radius, 0), common.V3(0, -radius, 0)
	pz, nz := common.V3(0, 0, radius), common.V3(0, 0, -radius)
	return Geometry{Triangles: []common.Vec3{
		px, pz, py, pz, nx, py, nx, nz, py, nz, px, py,
		px, ny, pz, pz, ny, nx, nx, ny, nz, nz, ny, px,
	}}
}

// Box builds an axis-aligned box centred on the origin.
func Box(width, height, depth float64) Geometry {
	x, y, z := width/2, height/2, depth/2
	v := func(sx, sy, sz float64) common.Vec3 { return common.V3(sx*x, sy*y, sz*z) }

	var tris []common.Vec3
	tris = quad(tris, v(1, -1, -1), v(1, 1, -1), v(1, 1, 1), v(1, -1, 1))
	tris = quad(tris, v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1), v(-1, -1, -1))
	tris = quad(tris, v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1))
	tris = quad(tris, v(-1, -1, 1), v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1))
	tris = quad(tris, v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1))
	tris = quad(tris, v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1))
	return Geometry{Triangles: tris}
}

// PlaneQuad builds a rectangle in the XY plane centred on the origin.
func PlaneQuad(width, height float64) Geometry {
	x, y := width/2, height/2
	return Geometry{Triangles: quad(nil,
		common.V3(-x, -y, 0), common.V3(x, -y, 0), common.V3(x, y, 0), common.V3(-x, y, 0))}
}

// Torus builds a ring around +Z in the XY plane.
func Torus(radius, tube float64, radialSegments, tubularSegments int) Geometry {
	point := func(j, i int) common.Vec3 {
		u := float64(i) / float64(tubularSegments) * 2 * math.Pi
		v := float64(j) / float64(radialSegments) * 2 * math.Pi
		return common.V3(
			(radius+tube*math.Cos(v))*math.Cos(u),
			(radius+tube*math.Cos(v))*math.Sin(u),
			tube*math.Sin(v),
		)
	}

	var tris []common.Vec3
	for j := 1; j <= radialSegments; j++ {
		for i := 1; i <= tubularSegments; i++ {
			tris = quad(tris, point(j, i-1), point(j-1, i-1), point(j-1, i), point(j, i))
		}
	}
	return Geometry{Triangles: tris}
}

// Sphere builds a UV sphere centred on the origin.
func Sphere(radius float64, widthSegments, heightSegments int) Geometry {
	point := func(ix, iy int) common.Vec3 {
		u := float64(ix) / float64(widthSegments)
		v := float64(iy) / float64(heightSegments)
		return common.V3(
			-radius*math.Cos(u*2*math.Pi)*math.Sin(v*math.Pi),
			radius*math.Cos(v*math.Pi),
			radius*math.Sin(u*2*math.Pi)*math.Sin(v*math.Pi),
		)
	}

	var tris []common.Vec3
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a, b := point(ix+1, iy), point(ix, iy)
			c, d := point(ix, iy+1), point(ix+1, iy+1)
			if iy != 0 {
				tris = append(tris, a, b, d)
			}
			if iy != heightSegments-1 {
				tris = append(tris, b, c, d)
			}
		}
	}
	return Geometry{Triangles: tris}
}

// UnitLine is the segment from the origin to +X.
func UnitLine() Geometry {
	return Geometry{Segments: []common.Vec3{{}, common.UnitX}}
}

// DiagonalLine is the segment from the origin to (1, 1, 1). Scaled by a
// vector it spans from the origin to that vector.
func DiagonalLine() Geometry {
	return Geometry{Segments: []common.Vec3{{}, common.Splat(1)}}
}

// Circle builds an arc in the YZ plane. arc is the fraction of a full turn,
// sampled at 64 points per turn.
func Circle(radius, arc float64) Geometry {
	n := int(64 * arc)
	var segs []common.Vec3
	prev := common.V3(0, radius, 0)
	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) / 32 * math.Pi)
		next := common.V3(0, cos*radius, sin*radius)
		segs = append(segs, prev, next)
		prev = next
	}
	return Geometry{Segments: segs}
}
