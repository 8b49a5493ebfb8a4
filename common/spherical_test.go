package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphericalFromVec3(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Spherical
	}{
		{"origin", Vec3{}, Spherical{}},
		{"on +z", V3(0, 0, 5), Spherical{Radius: 5, Phi: math.Pi / 2, Theta: 0}},
		{"on +x", V3(3, 0, 0), Spherical{Radius: 3, Phi: math.Pi / 2, Theta: math.Pi / 2}},
		{"on -x", V3(-3, 0, 0), Spherical{Radius: 3, Phi: math.Pi / 2, Theta: -math.Pi / 2}},
		{"north pole", V3(0, 2, 0), Spherical{Radius: 2, Phi: 0, Theta: 0}},
		{"south pole", V3(0, -2, 0), Spherical{Radius: 2, Phi: math.Pi, Theta: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SphericalFromVec3(tt.v)
			assert.InDelta(t, tt.want.Radius, got.Radius, 1e-12)
			assert.InDelta(t, tt.want.Phi, got.Phi, 1e-12)
			assert.InDelta(t, tt.want.Theta, got.Theta, 1e-12)
		})
	}
}

func TestSphericalFromVec3ZeroRadiusIsFinite(t *testing.T) {
	s := SphericalFromVec3(Vec3{})

	assert.Equal(t, Spherical{}, s)
	assert.False(t, math.IsNaN(s.Phi))
	assert.False(t, math.IsNaN(s.Theta))
	assert.Equal(t, Vec3{}, s.Vec3())
}

func TestSphericalRoundTrip(t *testing.T) {
	tests := []Vec3{
		V3(1, 2, 3),
		V3(-4, 0.5, -1),
		V3(0.001, -7, 0.002),
		V3(10, 10, -10),
	}
	for _, v := range tests {
		got := SphericalFromVec3(v).Vec3()
		assert.InDelta(t, 0, got.Sub(v).Len(), 1e-9, "round trip of %v gave %v", v, got)
	}
}

func TestSphericalMakeSafe(t *testing.T) {
	tests := []struct {
		name string
		phi  float64
		want float64
	}{
		{"at north pole", 0, SphericalEpsilon},
		{"past north pole", -0.5, SphericalEpsilon},
		{"at south pole", math.Pi, math.Pi - SphericalEpsilon},
		{"past south pole", 4, math.Pi - SphericalEpsilon},
		{"in range", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Spherical{Radius: 2, Phi: tt.phi, Theta: 0.3}.MakeSafe()
			assert.Equal(t, tt.want, s.Phi)
			assert.Equal(t, 2.0, s.Radius)
			assert.Equal(t, 0.3, s.Theta)
		})
	}
}
