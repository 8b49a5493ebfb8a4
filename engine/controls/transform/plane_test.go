package transform

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneOrientation(t *testing.T) {
	cases := []struct {
		name     string
		mode     Mode
		axis     Axis
		contains []common.Vec3
	}{
		{"translate x contains x", ModeTranslate, AxisX, []common.Vec3{common.UnitX}},
		{"translate y contains y", ModeTranslate, AxisY, []common.Vec3{common.UnitY}},
		{"scale x contains x", ModeScale, AxisX, []common.Vec3{common.UnitX}},
		{"xy plane", ModeTranslate, AxisXY, []common.Vec3{common.UnitX, common.UnitY}},
		{"yz plane", ModeTranslate, AxisYZ, []common.Vec3{common.UnitY, common.UnitZ}},
		{"xz plane", ModeTranslate, AxisXZ, []common.Vec3{common.UnitX, common.UnitZ}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := testView(tc.mode, common.V3(-5, 3, 4))
			v.Axis = tc.axis
			p := NewPlane()
			p.Update(v)

			n := p.Normal()
			assert.InDelta(t, 1, n.Len(), 1e-9)
			for _, axis := range tc.contains {
				assert.InDelta(t, 0, n.Dot(axis), 1e-9, axis)
			}
		})
	}
}

func TestPlaneSingleAxisFacesCamera(t *testing.T) {
	v := testView(ModeTranslate, common.V3(0, 3, 4))
	v.Axis = AxisX
	p := NewPlane()
	p.Update(v)

	// the plane contains x and tilts toward the eye as far as it can
	assert.InDelta(t, 1, math.Abs(p.Normal().Dot(v.Eye)), 1e-9)
}

func TestPlaneFacesCameraForFreeAxes(t *testing.T) {
	for _, tc := range []struct {
		mode Mode
		axis Axis
	}{
		{ModeTranslate, AxisXYZ},
		{ModeTranslate, AxisNone},
		{ModeRotate, AxisX},
		{ModeRotate, AxisE},
	} {
		v := testView(tc.mode, common.V3(-5, 3, 4))
		v.Axis = tc.axis
		p := NewPlane()
		p.Update(v)
		assert.Equal(t, v.CameraQuaternion, p.Quaternion, tc)
	}
}

func TestPlaneFollowsLocalFrame(t *testing.T) {
	v := testView(ModeTranslate, common.V3(0, 0, 10))
	v.Space = SpaceLocal
	v.WorldQuaternion = mgl64.QuatRotate(math.Pi/2, common.UnitX)
	v.Axis = AxisXY
	p := NewPlane()
	p.Update(v)

	// local z is world -y after a quarter turn about x
	assert.InDelta(t, 1, math.Abs(p.Normal().Y()), 1e-9)
}

func TestPlaneIntersect(t *testing.T) {
	v := testView(ModeTranslate, common.V3(0, 0, 10))
	v.Axis = AxisXY
	v.WorldPosition = common.V3(0, 0, 1)
	p := NewPlane()
	p.Update(v)

	hit, ok := p.Intersect(common.Ray{Origin: common.V3(0.5, 0.3, 10), Direction: common.V3(0, 0, -1)})
	require.True(t, ok)
	assert.InDelta(t, 0, hit.Sub(common.V3(0.5, 0.3, 1)).Len(), 1e-9, hit)

	// the back side hits too
	hit, ok = p.Intersect(common.Ray{Origin: common.V3(0.5, 0.3, -10), Direction: common.V3(0, 0, 1)})
	require.True(t, ok)
	assert.InDelta(t, 1, hit.Z(), 1e-9)

	_, ok = p.Intersect(common.Ray{Origin: common.V3(0, 0, 10), Direction: common.V3(0, 0, 1)})
	assert.False(t, ok, "behind the origin")

	_, ok = p.Intersect(common.Ray{Origin: common.V3(0, 0, 10), Direction: common.V3(1, 0, 0)})
	assert.False(t, ok, "parallel")

	_, ok = p.Intersect(common.Ray{Origin: common.V3(2*planeHalfSize, 0, 10), Direction: common.V3(0, 0, -1)})
	assert.False(t, ok, "outside the quad")
}
