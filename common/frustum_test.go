package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrustumIntersectsSphere(t *testing.T) {
	f := ExtractFrustumFromMatrix(Float32(Perspective(math.Pi/2, 1, 1, 1, 10)))

	tests := []struct {
		name   string
		center Vec3
		radius float64
		want   bool
	}{
		{"inside", V3(0, 0, -5), 0.1, true},
		{"behind camera", V3(0, 0, 5), 1, false},
		{"far right", V3(100, 0, -5), 1, false},
		{"straddles far plane", V3(0, 0, -11), 2, true},
		{"beyond far plane", V3(0, 0, -14), 2, false},
		{"before near plane", V3(0, 0, -0.5), 0.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.IntersectsSphere(tt.center, tt.radius))
		})
	}
}

func TestFrustumPlanesAreNormalized(t *testing.T) {
	f := ExtractFrustumFromMatrix(Float32(Perspective(1.2, 1.6, 1, 0.1, 1000)))
	for i, p := range f.Planes {
		assert.InDelta(t, 1.0, p.Normal.Len(), 1e-6, "plane %d", i)
	}
}
