package common

// Plane is the plane Normal·p + Distance = 0. Points with a positive signed
// distance lie on the inner side.
type Plane struct {
	Normal   Vec3
	Distance float64
}

// PlaneFromNormalAndPoint returns the plane with the given unit normal passing through point.
func PlaneFromNormalAndPoint(normal, point Vec3) Plane {
	return Plane{Normal: normal, Distance: -normal.Dot(point)}
}

// SignedDistance returns the signed distance of v from the plane.
func (p Plane) SignedDistance(v Vec3) float64 {
	return p.Normal.Dot(v) + p.Distance
}
