package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestQuatFromUnitVectors(t *testing.T) {
	tests := []struct {
		name string
		from Vec3
		to   Vec3
	}{
		{"same direction", UnitX, UnitX},
		{"quarter turn", UnitX, UnitY},
		{"oblique", V3(1, 2, 3).Normalize(), V3(-2, 0.5, 1).Normalize()},
		{"opposite x", UnitX, UnitX.Mul(-1)},
		{"opposite y", UnitY, UnitY.Mul(-1)},
		{"opposite z", UnitZ.Mul(-1), UnitZ},
		{"opposite oblique", V3(1, 1, 1).Normalize(), V3(-1, -1, -1).Normalize()},
		{"nearly opposite", UnitX, V3(-1, 0.01, 0).Normalize()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromUnitVectors(tt.from, tt.to)

			assert.InDelta(t, 1, q.Len(), 1e-12)
			got := q.Rotate(tt.from)
			assert.InDelta(t, 0, got.Sub(tt.to).Len(), 1e-9, "rotated %v", got)
		})
	}
}

func TestQuatFromUnitVectorsOppositeIsHalfTurn(t *testing.T) {
	q := QuatFromUnitVectors(UnitY, UnitY.Mul(-1))

	assert.InDelta(t, 0, q.W, 1e-12)
	// the axis must be perpendicular to the input
	assert.InDelta(t, 0, q.V.Dot(UnitY), 1e-12)
	assert.InDelta(t, 1, q.V.Len(), 1e-12)
}

func TestQuatFromEuler(t *testing.T) {
	tests := []struct {
		name  string
		euler Euler
		want  Quat
	}{
		{"zero", Euler{}, mgl64.QuatIdent()},
		{"x only", Euler{X: 0.5}, mgl64.QuatRotate(0.5, UnitX)},
		{"y only", Euler{Y: -1.2}, mgl64.QuatRotate(-1.2, UnitY)},
		{"z only", Euler{Z: math.Pi}, mgl64.QuatRotate(math.Pi, UnitZ)},
		{"xyz order", Euler{X: 0.3, Y: -0.5, Z: 1.1},
			mgl64.QuatRotate(0.3, UnitX).Mul(mgl64.QuatRotate(-0.5, UnitY)).Mul(mgl64.QuatRotate(1.1, UnitZ))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuatFromEuler(tt.euler)
			assert.True(t, got.OrientationEqualThreshold(tt.want, 1e-12), "got %v want %v", got, tt.want)
		})
	}
}

func TestEulerFromQuat(t *testing.T) {
	tests := []struct {
		name  string
		euler Euler
	}{
		{"zero", Euler{}},
		{"small angles", Euler{X: 0.1, Y: 0.2, Z: 0.3}},
		{"negative angles", Euler{X: -1.0, Y: -0.7, Z: 2.5}},
		{"near gimbal", Euler{X: 0.4, Y: math.Pi/2 - 0.01, Z: -0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EulerFromQuat(QuatFromEuler(tt.euler))
			assert.InDelta(t, tt.euler.X, got.X, 1e-9)
			assert.InDelta(t, tt.euler.Y, got.Y, 1e-9)
			assert.InDelta(t, tt.euler.Z, got.Z, 1e-9)
		})
	}
}

func TestEulerFromQuatGimbalLock(t *testing.T) {
	q := QuatFromEuler(Euler{X: 0.4, Y: math.Pi / 2, Z: -0.3})

	e := EulerFromQuat(q)
	assert.InDelta(t, math.Pi/2, e.Y, 1e-6)
	assert.Equal(t, 0.0, e.Z)
	// X absorbs the roll so the orientation survives
	assert.True(t, QuatFromEuler(e).OrientationEqualThreshold(q, 1e-9))
}

func TestEulerComponent(t *testing.T) {
	e := Euler{X: 1, Y: 2, Z: 3}
	assert.Equal(t, 2.0, e.Component(1))

	e = e.WithComponent(2, -3)
	assert.Equal(t, Euler{X: 1, Y: 2, Z: -3}, e)
}
