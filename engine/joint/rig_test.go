package joint

import (
	"testing"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/camera"
	"github.com/Carmen-Shannon/vrm-viewer/engine/controls/transform"
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRig(t *testing.T) (*Rig, map[string]game_object.GameObject) {
	t.Helper()
	root := game_object.NewGameObject()
	bones := map[string]game_object.GameObject{
		"hips":      game_object.NewGameObject(game_object.WithPosition(common.V3(0, 0, 0))),
		"head":      game_object.NewGameObject(game_object.WithPosition(common.V3(0, 3, 0))),
		"leftHand":  game_object.NewGameObject(game_object.WithPosition(common.V3(-3, 1, 0))),
		"rightHand": game_object.NewGameObject(game_object.WithPosition(common.V3(3, 1, 0))),
	}
	for _, b := range bones {
		root.Add(b)
	}
	cam := camera.NewCamera(camera.WithPosition(common.V3(0, 0, 10)))
	return NewRig(bones, cam), bones
}

func TestRigOrdersJointsByName(t *testing.T) {
	r, bones := newTestRig(t)

	require.Len(t, r.Joints(), 4)
	assert.Equal(t, bones["head"], r.Joints()[0].Object())
	assert.Equal(t, bones["rightHand"], r.Joints()[3].Object())
}

func TestRigHoverHighlightsOneMarker(t *testing.T) {
	r, bones := newTestRig(t)

	r.Hover(rayAt(common.V3(0, 3, 0)))
	for _, j := range r.Joints() {
		assert.Equal(t, j.Object() == bones["head"], j.Hovered())
	}

	r.Hover(rayAt(common.V3(5, 5, 0)))
	for _, j := range r.Joints() {
		assert.False(t, j.Hovered())
	}
}

func TestRigClickSelectsOneJointAtATime(t *testing.T) {
	r, bones := newTestRig(t)

	r.Click(rayAt(common.V3(-3, 1, 0)))
	require.NotNil(t, r.Selected())
	assert.Equal(t, bones["leftHand"], r.Selected().Object())
	assert.Equal(t, bones["leftHand"].UUID(), r.Selection().Selected())

	r.Click(rayAt(common.V3(3, 1, 0)))
	assert.Equal(t, bones["rightHand"], r.Selected().Object())
	selected := 0
	for _, j := range r.Joints() {
		if j.Selected() {
			selected++
		}
	}
	assert.Equal(t, 1, selected)
	assert.NotEmpty(t, r.Lines())
}

func TestRigClickOnEmptySpaceDeselects(t *testing.T) {
	r, _ := newTestRig(t)

	r.Click(rayAt(common.V3(0, 3, 0)))
	require.NotNil(t, r.Selected())

	r.Click(rayAt(common.V3(8, -8, 0)))
	assert.Nil(t, r.Selected())
	assert.False(t, r.Selection().Any())
	assert.Nil(t, r.Lines())
}

func TestRigClickOnGizmoKeepsSelection(t *testing.T) {
	r, bones := newTestRig(t)
	r.Click(rayAt(common.V3(0, 0, 0)))
	require.NotNil(t, r.Selected())
	r.Update()

	// the view-aligned ring of the rotate gizmo surrounds the bone
	c := r.Selected().Controls()
	ring := c.Gizmo().Pickers(transform.ModeRotate)
	require.NotEmpty(t, ring)
	var e *transform.Handle
	for _, h := range ring {
		if h.Name == transform.AxisE {
			e = h
		}
	}
	require.NotNil(t, e)
	radius := 1.25 * e.Scale.X()

	r.Click(rayAt(common.V3(radius, 0, 0)))
	assert.Equal(t, bones["hips"], r.Selected().Object())
}

func TestRigDragging(t *testing.T) {
	r, _ := newTestRig(t)
	assert.False(t, r.Dragging())

	r.Click(rayAt(common.V3(0, 3, 0)))
	c := r.Selected().Controls()
	c.SetAxis(transform.AxisE)
	c.PointerDown(transform.Pointer{Button: 0})

	assert.True(t, r.Dragging())
}

func TestRigDispose(t *testing.T) {
	r, bones := newTestRig(t)
	r.Click(rayAt(common.V3(0, 3, 0)))

	r.Dispose()

	assert.Empty(t, r.Joints())
	for _, b := range bones {
		assert.Empty(t, b.Children())
	}
}
