package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// rayParallelEpsilon is the smallest |n·d| treated as a crossing rather than
// a ray running along the surface.
const rayParallelEpsilon = 1e-12

// Ray is a half-line with a unit Direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// At returns the point at parameter t along r.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Direction.Mul(t)) }

// Transform returns r mapped through m. The direction is not renormalized, so a
// parameter t on the returned ray addresses the same point as t on r.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin:    mgl64.TransformCoordinate(r.Origin, m),
		Direction: mgl64.TransformNormal(r.Direction, m),
	}
}

// IntersectPlane tests r against p from both sides.
//
// Returns:
//   - float64: the ray parameter of the hit
//   - bool: false when the ray is parallel to p or p is behind the origin
func (r Ray) IntersectPlane(p Plane) (float64, bool) {
	denom := p.Normal.Dot(r.Direction)
	if math.Abs(denom) < rayParallelEpsilon {
		return 0, false
	}
	t := -p.SignedDistance(r.Origin) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectTriangle tests r against the triangle (a, b, c) from both sides
// using the Möller–Trumbore algorithm.
//
// Returns:
//   - float64: the ray parameter of the hit
//   - bool: false when the ray misses or is parallel to the triangle
func (r Ray) IntersectTriangle(a, b, c Vec3) (float64, bool) {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	p := r.Direction.Cross(edge2)
	det := edge1.Dot(p)
	if math.Abs(det) < rayParallelEpsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(edge1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := edge2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectSphere tests r against a sphere.
//
// Returns:
//   - float64: the nearest non-negative ray parameter of the hit
//   - bool: false when the ray misses
func (r Ray) IntersectSphere(center Vec3, radius float64) (float64, bool) {
	toCenter := center.Sub(r.Origin)
	dirLenSq := r.Direction.LenSqr()
	if dirLenSq == 0 {
		return 0, false
	}
	tca := toCenter.Dot(r.Direction) / dirLenSq
	closest := r.At(tca)
	d2 := closest.Sub(center).LenSqr()
	r2 := radius * radius
	if d2 > r2 {
		return 0, false
	}
	thc := math.Sqrt((r2 - d2) / dirLenSq)
	t0, t1 := tca-thc, tca+thc
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}
