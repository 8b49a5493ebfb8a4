package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func assertMat4InDelta(t *testing.T, want, got Mat4, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "element %d", i)
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name     string
		position Vec3
		rotation Quat
		scale    Vec3
	}{
		{"identity", Vec3{}, mgl64.QuatIdent(), Splat(1)},
		{"translated rotated scaled", V3(1, -2, 3), mgl64.QuatRotate(0.7, V3(1, 2, 3).Normalize()), V3(2, 3, 4)},
		{"mirrored x", V3(0, 1, 0), mgl64.QuatRotate(math.Pi/3, UnitY), V3(-2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComposeMat4(tt.position, tt.rotation, tt.scale)

			position, rotation, scale := Decompose(m)
			assert.InDelta(t, 0, position.Sub(tt.position).Len(), 1e-12)
			assert.InDelta(t, 0, scale.Sub(tt.scale).Len(), 1e-12)
			assert.True(t, rotation.OrientationEqualThreshold(tt.rotation, 1e-9), "rotation %v", rotation)
		})
	}
}

func TestDecomposeNegativeDeterminant(t *testing.T) {
	// mirroring Y alone still reports the flip on X
	m := mgl64.Scale3D(1, -1, 1)
	assert.Less(t, m.Det(), 0.0)

	position, rotation, scale := Decompose(m)
	assert.Equal(t, Vec3{}, position)
	assert.InDelta(t, -1, scale.X(), 1e-12)
	assert.InDelta(t, 1, scale.Y(), 1e-12)
	assert.InDelta(t, 1, scale.Z(), 1e-12)
	assert.InDelta(t, 1, rotation.Len(), 1e-12)
	assertMat4InDelta(t, m, ComposeMat4(position, rotation, scale), 1e-12)
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		ok   bool
	}{
		{"identity", mgl64.Ident4(), true},
		{"affine", ComposeMat4(V3(4, 5, 6), mgl64.QuatRotate(1, UnitZ), V3(1, 2, 0.5)), true},
		{"flattened axis", mgl64.Scale3D(1, 0, 1), false},
		{"zero", Mat4{}, false},
		{"repeated column", mgl64.Mat4FromCols(
			mgl64.Vec4{1, 2, 3, 0},
			mgl64.Vec4{1, 2, 3, 0},
			mgl64.Vec4{0, 0, 1, 0},
			mgl64.Vec4{0, 0, 0, 1},
		), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := Invert(tt.m)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				assert.Equal(t, Mat4{}, inv)
				return
			}
			assertMat4InDelta(t, mgl64.Ident4(), tt.m.Mul4(inv), 1e-9)
		})
	}
}

func TestLookAtRotation(t *testing.T) {
	tests := []struct {
		name   string
		eye    Vec3
		target Vec3
		up     Vec3
		wantZ  Vec3
	}{
		{"looking down -z", V3(0, 0, 5), Vec3{}, UnitY, UnitZ},
		{"looking down -x", V3(5, 0, 0), Vec3{}, UnitY, UnitX},
		{"eye above target with y up", V3(0, 5, 0), Vec3{}, UnitY, UnitY},
		{"eye below target with y up", V3(0, -5, 0), Vec3{}, UnitY, UnitY.Mul(-1)},
		{"eye on z with z up", V3(0, 0, 5), Vec3{}, UnitZ, UnitZ},
		{"eye on target", V3(1, 1, 1), V3(1, 1, 1), UnitY, UnitZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := LookAtRotation(tt.eye, tt.target, tt.up)

			x, y, z := Column(m, 0), Column(m, 1), Column(m, 2)
			assert.InDelta(t, 1, x.Len(), 1e-9)
			assert.InDelta(t, 1, y.Len(), 1e-9)
			assert.InDelta(t, 1, z.Len(), 1e-9)
			assert.InDelta(t, 0, x.Dot(y), 1e-9)
			assert.InDelta(t, 0, y.Dot(z), 1e-9)
			assert.InDelta(t, 1, m.Det(), 1e-9)
			assert.Equal(t, Vec3{}, Position(m))

			assert.InDelta(t, 0, z.Sub(tt.wantZ).Len(), 1e-3, "z axis %v", z)
		})
	}
}

func TestComposeMat4AppliesScaleRotationTranslation(t *testing.T) {
	m := ComposeMat4(V3(10, 0, 0), mgl64.QuatRotate(math.Pi/2, UnitZ), V3(2, 1, 1))

	// (1,0,0) scaled to (2,0,0), turned to (0,2,0), moved to (10,2,0)
	got := mgl64.TransformCoordinate(UnitX, m)
	assert.InDelta(t, 0, got.Sub(V3(10, 2, 0)).Len(), 1e-12, "%v", got)
	assert.Equal(t, V3(10, 0, 0), Position(m))
}

func TestFloat32(t *testing.T) {
	m := ComposeMat4(V3(1, 2, 3), mgl64.QuatIdent(), Splat(1))
	f := Float32(m)
	assert.Equal(t, float32(1), f[0])
	assert.Equal(t, float32(1), f[12])
	assert.Equal(t, float32(2), f[13])
	assert.Equal(t, float32(3), f[14])
}
