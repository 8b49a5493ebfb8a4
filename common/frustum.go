package common

// Frustum holds the six inward-facing planes of a view volume.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Frustum plane indices.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// ExtractFrustumFromMatrix extracts the frustum planes of a column-major
// view-projection matrix with the Gribb/Hartmann method. The near plane uses
// the WebGPU clip range z in [0, w].
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the combined projection * view matrix
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProj [16]float32) Frustum {
	// row(i) of a column-major matrix: m[i], m[4+i], m[8+i], m[12+i]
	row := func(i int) [4]float64 {
		return [4]float64{
			float64(viewProj[i]), float64(viewProj[4+i]),
			float64(viewProj[8+i]), float64(viewProj[12+i]),
		}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	combos := [6][4]float64{}
	for k := 0; k < 4; k++ {
		combos[FrustumLeft][k] = r3[k] + r0[k]
		combos[FrustumRight][k] = r3[k] - r0[k]
		combos[FrustumBottom][k] = r3[k] + r1[k]
		combos[FrustumTop][k] = r3[k] - r1[k]
		combos[FrustumNear][k] = r2[k]
		combos[FrustumFar][k] = r3[k] - r2[k]
	}

	var f Frustum
	for i, c := range combos {
		n := V3(c[0], c[1], c[2])
		d := c[3]
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
			d /= l
		}
		f.Planes[i] = Plane{Normal: n, Distance: d}
	}
	return f
}

// IntersectsSphere reports whether a sphere is at least partly inside f.
//
// Parameters:
//   - center: the sphere center
//   - radius: the sphere radius
//
// Returns:
//   - bool: false only if the sphere is entirely outside one plane
func (f Frustum) IntersectsSphere(center Vec3, radius float64) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(center) < -radius {
			return false
		}
	}
	return true
}
