package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// idCounter hands out process-unique numeric IDs.
var idCounter atomic.Uint64

// Lines is a renderable line-list: Segments holds vertex pairs in object space.
type Lines struct {
	Segments []common.Vec3
	Color    common.Color
}

type gameObject struct {
	id      uint64
	uuid    string
	name    string
	visible atomic.Bool

	position   common.Vec3
	quaternion common.Quat
	scale      common.Vec3

	parent   *gameObject
	children []*gameObject

	lines *Lines
}

// GameObject is a node in the viewer's scene graph. It carries a local
// transform relative to its parent and optional line geometry for the renderer.
// Scene-graph nodes are owned by the frame loop and are not safe for
// concurrent mutation.
type GameObject interface {
	// ID returns the object's numeric identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// UUID returns the object's globally unique identifier.
	//
	// Returns:
	//   - string: the UUID in canonical form
	UUID() string

	// Name returns the object's name.
	//
	// Returns:
	//   - string: the name, possibly empty
	Name() string

	// SetName sets the object's name.
	//
	// Parameters:
	//   - name: the new name
	SetName(name string)

	// Visible returns whether the object and its subtree are drawn and pickable.
	//
	// Returns:
	//   - bool: true if visible
	Visible() bool

	// SetVisible sets the visibility flag.
	//
	// Parameters:
	//   - visible: true to show the object
	SetVisible(visible bool)

	// Position returns the local position.
	//
	// Returns:
	//   - common.Vec3: the position relative to the parent
	Position() common.Vec3

	// SetPosition sets the local position.
	//
	// Parameters:
	//   - p: the new position relative to the parent
	SetPosition(p common.Vec3)

	// Quaternion returns the local orientation.
	//
	// Returns:
	//   - common.Quat: the orientation relative to the parent
	Quaternion() common.Quat

	// SetQuaternion sets the local orientation.
	//
	// Parameters:
	//   - q: the new orientation
	SetQuaternion(q common.Quat)

	// Rotation returns the local orientation as XYZ Euler angles.
	//
	// Returns:
	//   - common.Euler: the rotation in radians
	Rotation() common.Euler

	// SetRotation sets the local orientation from XYZ Euler angles.
	//
	// Parameters:
	//   - e: the rotation in radians
	SetRotation(e common.Euler)

	// Scale returns the local scale.
	//
	// Returns:
	//   - common.Vec3: the scale factors
	Scale() common.Vec3

	// SetScale sets the local scale.
	//
	// Parameters:
	//   - s: the new scale factors
	SetScale(s common.Vec3)

	// Parent returns the parent node, or nil for a root.
	//
	// Returns:
	//   - GameObject: the parent or nil
	Parent() GameObject

	// Children returns a copy of the child list.
	//
	// Returns:
	//   - []GameObject: the children in insertion order
	Children() []GameObject

	// Add attaches child to this node, detaching it from any previous parent.
	//
	// Parameters:
	//   - child: the node to attach
	Add(child GameObject)

	// Remove detaches child from this node. Unknown children are ignored.
	//
	// Parameters:
	//   - child: the node to detach
	Remove(child GameObject)

	// MatrixLocal returns the transform composed from position, quaternion and scale.
	//
	// Returns:
	//   - common.Mat4: the local matrix
	MatrixLocal() common.Mat4

	// MatrixWorld returns the product of all ancestor local matrices and this
	// node's local matrix.
	//
	// Returns:
	//   - common.Mat4: the world matrix
	MatrixWorld() common.Mat4

	// WorldPosition returns the translation of the world matrix.
	//
	// Returns:
	//   - common.Vec3: the world-space position
	WorldPosition() common.Vec3

	// Traverse calls fn for this node and every descendant, depth first.
	//
	// Parameters:
	//   - fn: the visitor
	Traverse(fn func(GameObject))

	// Lines returns the attached line geometry, or nil.
	//
	// Returns:
	//   - *Lines: the geometry or nil
	Lines() *Lines

	// SetLines attaches line geometry drawn with this node's world matrix.
	//
	// Parameters:
	//   - l: the geometry, or nil to clear it
	SetLines(l *Lines)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new visible GameObject with an identity transform.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		id:         idCounter.Add(1),
		uuid:       uuid.New().String(),
		quaternion: mgl64.QuatIdent(),
		scale:      common.Splat(1),
	}
	obj.visible.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64          { return g.id }
func (g *gameObject) UUID() string        { return g.uuid }
func (g *gameObject) Name() string        { return g.name }
func (g *gameObject) SetName(name string) { g.name = name }

func (g *gameObject) Visible() bool {
	return g.visible.Load()
}

func (g *gameObject) SetVisible(visible bool) {
	g.visible.Store(visible)
}

func (g *gameObject) Position() common.Vec3 {
	return g.position
}

func (g *gameObject) SetPosition(p common.Vec3) {
	g.position = p
}

func (g *gameObject) Quaternion() common.Quat {
	return g.quaternion
}

func (g *gameObject) SetQuaternion(q common.Quat) {
	g.quaternion = q
}

func (g *gameObject) Rotation() common.Euler {
	return common.EulerFromQuat(g.quaternion)
}

func (g *gameObject) SetRotation(e common.Euler) {
	g.quaternion = common.QuatFromEuler(e)
}

func (g *gameObject) Scale() common.Vec3 {
	return g.scale
}

func (g *gameObject) SetScale(s common.Vec3) {
	g.scale = s
}

func (g *gameObject) Parent() GameObject {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

func (g *gameObject) Children() []GameObject {
	out := make([]GameObject, len(g.children))
	for i, c := range g.children {
		out[i] = c
	}
	return out
}

func (g *gameObject) Add(child GameObject) {
	c, ok := child.(*gameObject)
	if !ok || c == g {
		return
	}
	if c.parent != nil {
		c.parent.Remove(c)
	}
	c.parent = g
	g.children = append(g.children, c)
}

func (g *gameObject) Remove(child GameObject) {
	c, ok := child.(*gameObject)
	if !ok {
		return
	}
	for i, existing := range g.children {
		if existing == c {
			g.children = append(g.children[:i], g.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

func (g *gameObject) MatrixLocal() common.Mat4 {
	return common.ComposeMat4(g.position, g.quaternion, g.scale)
}

func (g *gameObject) MatrixWorld() common.Mat4 {
	local := g.MatrixLocal()
	if g.parent == nil {
		return local
	}
	return g.parent.MatrixWorld().Mul4(local)
}

func (g *gameObject) WorldPosition() common.Vec3 {
	return common.Position(g.MatrixWorld())
}

func (g *gameObject) Traverse(fn func(GameObject)) {
	fn(g)
	for _, c := range g.children {
		c.Traverse(fn)
	}
}

func (g *gameObject) Lines() *Lines {
	return g.lines
}

func (g *gameObject) SetLines(l *Lines) {
	g.lines = l
}
