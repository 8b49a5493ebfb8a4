package orbit

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deg(d float64) float64 { return mgl64.DegToRad(d) }

func TestRestrictThetaAcrossSeam(t *testing.T) {
	lo, hi := deg(170), deg(-170)

	cases := []struct {
		name  string
		theta float64
		want  float64
	}{
		{"inside at pi", deg(180), deg(180)},
		{"below lower bound", deg(160), deg(170)},
		{"above upper bound", deg(-160), deg(-170)},
		{"positive far side", deg(10), deg(170)},
		{"negative far side", deg(-10), deg(-170)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, restrictTheta(lo, hi, tc.theta), 1e-12)
		})
	}
}

func TestRestrictThetaOrdinaryWindow(t *testing.T) {
	assert.InDelta(t, deg(-45), restrictTheta(deg(-45), deg(45), deg(-90)), 1e-12)
	assert.InDelta(t, deg(45), restrictTheta(deg(-45), deg(45), deg(90)), 1e-12)
	assert.InDelta(t, deg(30), restrictTheta(deg(-45), deg(45), deg(30)), 1e-12)
}

func TestRestrictIsIdempotent(t *testing.T) {
	s := NewSphericalState(common.UnitY, &Damping{})
	s.MinPolarAngle = 0.5
	s.MaxDistance = 3
	s.MinAzimuthAngle = deg(-30)
	s.MaxAzimuthAngle = deg(30)
	s.SetSpherical(common.Spherical{Radius: 10, Phi: 0.1, Theta: deg(90)})

	s.Restrict()
	first := s.Spherical()
	s.Restrict()

	assert.Equal(t, first, s.Spherical())
	assert.Equal(t, 0.5, first.Phi)
	assert.Equal(t, 3.0, first.Radius)
	assert.InDelta(t, deg(30), first.Theta, 1e-12)
}

func TestRestrictKeepsPolarOffPoles(t *testing.T) {
	s := NewSphericalState(common.UnitY, &Damping{})
	s.SetSpherical(common.Spherical{Radius: 1, Phi: 0})
	s.Restrict()
	assert.Greater(t, s.Spherical().Phi, 0.0)
}

func TestRestrictIgnoresInfiniteAzimuth(t *testing.T) {
	s := NewSphericalState(common.UnitY, &Damping{})
	s.MinAzimuthAngle = deg(-30)
	s.SetSpherical(common.Spherical{Radius: 1, Phi: 1, Theta: deg(90)})
	s.Restrict()
	assert.InDelta(t, deg(90), s.Spherical().Theta, 1e-12)
}

func TestUpdateObjectTransformPlacesCamera(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 5)))
	s := NewSphericalState(cam.Up(), &Damping{})
	s.AlignSpherical(cam.Position())

	s.RotateLeft(-math.Pi / 2)
	s.UpdateObjectTransform(cam, common.Vec3{}, 1)

	assert.InDelta(t, 0, cam.Position().Sub(common.V3(5, 0, 0)).Len(), 1e-9, "position %v", cam.Position())
	theta, phi := s.Delta()
	assert.Equal(t, 0.0, theta)
	assert.Equal(t, 0.0, phi)

	forward := cam.Quaternion().Rotate(common.V3(0, 0, -1))
	assert.InDelta(t, 0, forward.Sub(common.V3(-1, 0, 0)).Len(), 1e-9)
}

func TestUpdateObjectTransformWithZUp(t *testing.T) {
	cam := camera.NewCamera(camera.WithUp(common.UnitZ), camera.WithPosition(common.V3(0, -5, 0)))
	s := NewSphericalState(cam.Up(), &Damping{})
	s.AlignSpherical(cam.Position())
	assert.InDelta(t, math.Pi/2, s.PolarAngle(), 1e-9)

	s.UpdateObjectTransform(cam, common.Vec3{}, 0.5)
	assert.InDelta(t, 0, cam.Position().Sub(common.V3(0, -2.5, 0)).Len(), 1e-9, "position %v", cam.Position())
}

func TestDampedRotationSettles(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 5)))
	s := NewSphericalState(cam.Up(), &Damping{Enabled: true, Factor: 0.05})
	target := common.Vec3{}

	s.AlignSpherical(cam.Position().Sub(target))
	s.RotateLeft(-1)

	s.UpdateObjectTransform(cam, target, 1)
	assert.InDelta(t, 0.05, s.AzimuthalAngle(), 1e-12)

	for i := 1; i < 200; i++ {
		s.AlignSpherical(cam.Position().Sub(target))
		s.UpdateObjectTransform(cam, target, 1)
	}

	theta, _ := s.Delta()
	assert.Less(t, math.Abs(theta), 1e-6)
	assert.InDelta(t, 1.0, s.AzimuthalAngle(), 1e-9)
	assert.InDelta(t, 5.0, cam.Position().Len(), 1e-9)
}

func TestSetAzimuthalAngleTakesShortestPath(t *testing.T) {
	s := NewSphericalState(common.UnitY, &Damping{})
	s.AlignSpherical(common.Spherical{Radius: 5, Phi: math.Pi / 2, Theta: deg(170)}.Vec3())

	s.SetAzimuthalAngle(deg(-170))
	theta, _ := s.Delta()
	assert.InDelta(t, deg(20), theta, 1e-9)

	s.SetAzimuthalAngle(deg(10))
	theta, _ = s.Delta()
	assert.InDelta(t, deg(-160), theta, 1e-9)
}

func TestSetPolarAngle(t *testing.T) {
	s := NewSphericalState(common.UnitY, &Damping{})
	s.AlignSpherical(common.V3(0, 0, 5))
	require.InDelta(t, math.Pi/2, s.PolarAngle(), 1e-12)

	s.SetPolarAngle(math.Pi / 4)
	_, phi := s.Delta()
	assert.InDelta(t, -math.Pi/4, phi, 1e-12)
}
