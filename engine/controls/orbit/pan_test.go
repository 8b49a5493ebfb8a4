package orbit

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/input"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func newTestPan(cam camera.Camera, target *common.Vec3) *Pan {
	p := NewPan(cam, target, &Damping{}, log.Default())
	p.SetViewport(input.NewElement(nil, 800, 600))
	return p
}

func TestPerspectivePanFullHeight(t *testing.T) {
	const distance = 10.0
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, distance)))
	cam.LookAt(common.Vec3{})
	target := common.Vec3{}
	p := newTestPan(cam, &target)

	p.Pan(0, 600)

	want := 2 * distance * math.Tan(mgl64.DegToRad(25))
	assert.InDelta(t, 0, p.Offset().Sub(common.V3(0, want, 0)).Len(), 1e-9, "offset %v", p.Offset())
}

func TestPerspectivePanLeftUsesHeight(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 10)), camera.WithAspect(800.0/600.0))
	cam.LookAt(common.Vec3{})
	target := common.Vec3{}
	p := newTestPan(cam, &target)

	p.Pan(600, 0)

	want := 2 * 10 * math.Tan(mgl64.DegToRad(25))
	assert.InDelta(t, 0, p.Offset().Sub(common.V3(-want, 0, 0)).Len(), 1e-9, "offset %v", p.Offset())
}

func TestOrthographicPan(t *testing.T) {
	cam := camera.NewCamera(camera.WithOrthographic(-4, 4, 3, -3), camera.WithPosition(common.V3(0, 0, 10)), camera.WithZoom(2))
	cam.LookAt(common.Vec3{})
	target := common.Vec3{}
	p := newTestPan(cam, &target)

	p.Pan(800, 600)

	assert.InDelta(t, 0, p.Offset().Sub(common.V3(-4, 3, 0)).Len(), 1e-9, "offset %v", p.Offset())
}

func TestPanInGroundPlane(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 10, 10)))
	cam.LookAt(common.Vec3{})
	target := common.Vec3{}
	p := newTestPan(cam, &target)
	p.ScreenSpacePanning = false

	p.Pan(0, 100)

	assert.InDelta(t, 0.0, p.Offset().Y(), 1e-9)
	assert.Less(t, p.Offset().Z(), 0.0)
}

func TestPanWithoutViewportIsNoop(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 10)))
	target := common.Vec3{}
	p := NewPan(cam, &target, &Damping{}, log.Default())

	p.Pan(10, 10)
	assert.Equal(t, common.Vec3{}, p.Offset())
}

func TestPanUnknownCameraDisables(t *testing.T) {
	var buf bytes.Buffer
	cam := camera.NewCamera(camera.WithKind(camera.KindUnknown))
	target := common.Vec3{}
	p := NewPan(cam, &target, &Damping{}, log.New(&buf, "", 0))
	p.SetViewport(input.NewElement(nil, 100, 100))

	p.Pan(1, 1)

	assert.False(t, p.EnablePan)
	assert.Contains(t, buf.String(), "pan disabled")
}

func TestPanUpdateDrainsOffset(t *testing.T) {
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 10)))
	cam.LookAt(common.Vec3{})
	target := common.Vec3{}
	p := newTestPan(cam, &target)

	p.Pan(0, 600)
	next := p.Update(target)

	assert.Greater(t, next.Y(), 0.0)
	assert.Equal(t, common.Vec3{}, p.Offset())
}

func TestPanHandleMoveScalesBySpeed(t *testing.T) {
	cam := camera.NewCamera(camera.WithOrthographic(-4, 4, 3, -3), camera.WithPosition(common.V3(0, 0, 10)))
	cam.LookAt(common.Vec3{})
	target := common.Vec3{}
	p := newTestPan(cam, &target)
	p.PanSpeed = 2

	p.SetStart(100, 100)
	p.HandleMove(200, 100)

	assert.InDelta(t, 0, p.Offset().Sub(common.V3(-2, 0, 0)).Len(), 1e-9, "offset %v", p.Offset())
}
