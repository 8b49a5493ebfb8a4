package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind discriminates the projection a camera uses. Controls branch on it to
// pick perspective or orthographic pan/zoom behaviour.
type Kind int

const (
	KindPerspective Kind = iota
	KindOrthographic
	KindUnknown
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPerspective:
		return "perspective"
	case KindOrthographic:
		return "orthographic"
	}
	return "unknown"
}

type cameraImpl struct {
	mu *sync.Mutex

	kind Kind

	position   common.Vec3
	quaternion common.Quat
	up         common.Vec3

	fov    float64 // vertical, degrees
	aspect float64
	zoom   float64
	near   float64
	far    float64

	left, right, top, bottom float64

	projectionMatrix common.Mat4
}

// Camera is the viewer camera. It owns a pose (position, orientation, up) and
// the projection parameters for its Kind. Orbit controls write the pose each
// frame; the renderer reads the matrices.
type Camera interface {
	// Kind returns the projection discriminator.
	//
	// Returns:
	//   - Kind: perspective, orthographic or unknown
	Kind() Kind

	// Position returns the world-space position.
	//
	// Returns:
	//   - common.Vec3: the camera position
	Position() common.Vec3

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p common.Vec3)

	// Quaternion returns the world-space orientation.
	//
	// Returns:
	//   - common.Quat: the orientation
	Quaternion() common.Quat

	// SetQuaternion sets the world-space orientation.
	//
	// Parameters:
	//   - q: the new orientation
	SetQuaternion(q common.Quat)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - common.Vec3: the up vector
	Up() common.Vec3

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up common.Vec3)

	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float64: field of view in degrees
	Fov() float64

	// SetFov sets the vertical field of view in degrees and recomputes the projection.
	//
	// Parameters:
	//   - fov: field of view in degrees
	SetFov(fov float64)

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float64: the aspect ratio
	Aspect() float64

	// SetAspect sets the aspect ratio (width / height) and recomputes the projection.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float64)

	// Zoom returns the zoom factor.
	//
	// Returns:
	//   - float64: the zoom factor (1 = unzoomed)
	Zoom() float64

	// SetZoom sets the zoom factor. Callers must call UpdateProjectionMatrix
	// for the change to reach the projection.
	//
	// Parameters:
	//   - zoom: the zoom factor
	SetZoom(zoom float64)

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float64: near plane distance
	Near() float64

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float64: far plane distance
	Far() float64

	// Frustum returns the orthographic view bounds at zoom 1.
	//
	// Returns:
	//   - left, right, top, bottom: view bounds
	Frustum() (left, right, top, bottom float64)

	// SetFrustum sets the orthographic view bounds and recomputes the projection.
	//
	// Parameters:
	//   - left, right, top, bottom: view bounds at zoom 1
	SetFrustum(left, right, top, bottom float64)

	// LookAt rotates the camera so its -Z axis points at target, honouring Up.
	//
	// Parameters:
	//   - target: the world-space point to look at
	LookAt(target common.Vec3)

	// MatrixWorld returns the camera's world transform.
	//
	// Returns:
	//   - common.Mat4: the world matrix (unit scale)
	MatrixWorld() common.Mat4

	// UpdateProjectionMatrix recomputes the projection from fov/aspect/zoom or the
	// orthographic bounds.
	UpdateProjectionMatrix()

	// ProjectionMatrix returns the current projection (column-major, WebGPU depth range).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewMatrix returns the inverse of the world matrix.
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// Ray returns the world-space pick ray through a point in normalized device
	// coordinates, x and y in [-1, 1] with +y up.
	//
	// Parameters:
	//   - ndcX, ndcY: normalized device coordinates
	//
	// Returns:
	//   - common.Ray: the pick ray with a unit direction
	Ray(ndcX, ndcY float64) common.Ray
}

var _ Camera = &cameraImpl{}

// NewCamera creates a perspective camera at the origin looking down -Z with
// fov 50, aspect 1, near 0.1 and far 2000.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		kind:       KindPerspective,
		quaternion: mgl64.QuatIdent(),
		up:         common.UnitY,
		fov:        50,
		aspect:     1,
		zoom:       1,
		near:       0.1,
		far:        2000,
		left:       -1,
		right:      1,
		top:        1,
		bottom:     -1,
	}
	for _, option := range options {
		option(c)
	}
	c.updateProjection()
	return c
}

func (c *cameraImpl) Kind() Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kind
}

func (c *cameraImpl) Position() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p common.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraImpl) Quaternion() common.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quaternion
}

func (c *cameraImpl) SetQuaternion(q common.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quaternion = q
}

func (c *cameraImpl) Up() common.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) SetUp(up common.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraImpl) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) SetFov(fov float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateProjection()
}

func (c *cameraImpl) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateProjection()
}

func (c *cameraImpl) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) SetZoom(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
}

func (c *cameraImpl) Near() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Frustum() (left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.top, c.bottom
}

func (c *cameraImpl) SetFrustum(left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.right, c.top, c.bottom = left, right, top, bottom
	c.updateProjection()
}

func (c *cameraImpl) LookAt(target common.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quaternion = mgl64.Mat4ToQuat(common.LookAtRotation(c.position, target, c.up))
}

func (c *cameraImpl) MatrixWorld() common.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ComposeMat4(c.position, c.quaternion, common.Splat(1))
}

func (c *cameraImpl) UpdateProjectionMatrix() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateProjection()
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Float32(c.projectionMatrix)
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Float32(c.viewMatrix())
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.Float32(c.projectionMatrix.Mul4(c.viewMatrix()))
}

func (c *cameraImpl) Ray(ndcX, ndcY float64) common.Ray {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kind == KindOrthographic {
		cx := (c.right + c.left) / 2
		cy := (c.top + c.bottom) / 2
		local := common.V3(
			cx+ndcX*(c.right-c.left)/(2*c.zoom),
			cy+ndcY*(c.top-c.bottom)/(2*c.zoom),
			0,
		)
		return common.Ray{
			Origin:    c.position.Add(c.quaternion.Rotate(local)),
			Direction: c.quaternion.Rotate(common.V3(0, 0, -1)),
		}
	}

	tanHalf := math.Tan(mgl64.DegToRad(c.fov) / 2)
	dir := common.V3(ndcX*tanHalf*c.aspect/c.zoom, ndcY*tanHalf/c.zoom, -1)
	return common.Ray{
		Origin:    c.position,
		Direction: c.quaternion.Rotate(dir).Normalize(),
	}
}

// viewMatrix returns the inverse world matrix. Caller must hold the mutex.
func (c *cameraImpl) viewMatrix() common.Mat4 {
	world := common.ComposeMat4(c.position, c.quaternion, common.Splat(1))
	inv, ok := common.Invert(world)
	if !ok {
		return mgl64.Ident4()
	}
	return inv
}

// updateProjection recalculates the projection matrix. Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	switch c.kind {
	case KindOrthographic:
		c.projectionMatrix = common.Orthographic(c.left, c.right, c.top, c.bottom, c.zoom, c.near, c.far)
	default:
		c.projectionMatrix = common.Perspective(mgl64.DegToRad(c.fov), c.aspect, c.zoom, c.near, c.far)
	}
}
