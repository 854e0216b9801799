package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionType selects how a Camera maps view space to clip space.
type ProjectionType int

const (
	// ProjectionPerspective uses a vertical field of view and aspect ratio.
	ProjectionPerspective ProjectionType = iota
	// ProjectionOrthographic uses a fixed half-height (OrthoSize) and aspect ratio.
	// Screen-space UI cameras use this so that unprojected points keep uniform scale.
	ProjectionOrthographic
)

type cameraImpl struct {
	mu *sync.Mutex

	up [3]float32

	projection ProjectionType
	fov        float32
	orthoSize  float32
	aspect     float32
	near       float32
	far        float32

	viewMatrix           mgl32.Mat4
	inverseViewMatrix    mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4

	controller CameraController
}

// Camera defines the interface for the camera system.
// The camera holds projection settings and computes view/projection matrices
// from an attached CameraController each frame via Update(). A camera without
// a controller sits at the origin looking down -Z.
type Camera interface {
	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Projection returns the projection type.
	//
	// Returns:
	//   - ProjectionType: perspective or orthographic
	Projection() ProjectionType

	// Fov returns the vertical field of view in radians (perspective only).
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// OrthoSize returns the half-height of the view volume (orthographic only).
	//
	// Returns:
	//   - float32: half-height in world units
	OrthoSize() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewMatrix returns the current view matrix.
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix.
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined view-projection matrix.
	ViewProjectionMatrix() mgl32.Mat4

	// Controller returns the attached CameraController, or nil.
	Controller() CameraController

	// Update reads position/target from the controller and recomputes matrices.
	// Should be called once per frame (typically in the tick callback).
	Update()

	// ScreenToWorld unprojects a point in centered screen space ([-1,1], y up) to the world-space
	// point at the given view-space depth in front of the camera.
	//
	// Parameters:
	//   - centered: screen point in centered space
	//   - depth: distance along the view direction
	//
	// Returns:
	//   - mgl32.Vec3: the world-space point
	ScreenToWorld(centered mgl32.Vec2, depth float32) mgl32.Vec3

	// WorldToScreen projects a world-space point to centered screen space ([-1,1], y up).
	// Points on the camera plane (clip w == 0) map to the screen center.
	//
	// Parameters:
	//   - world: the world-space point
	//
	// Returns:
	//   - mgl32.Vec2: the projected point in centered space
	WorldToScreen(world mgl32.Vec3) mgl32.Vec2

	// Forward returns the unit view direction in world space.
	Forward() mgl32.Vec3

	// WorldRotation returns the camera's world rotation.
	WorldRotation() mgl32.Quat

	// WorldPosition returns the camera's world position.
	WorldPosition() mgl32.Vec3

	// SetUp sets the camera's up vector.
	SetUp(x, y, z float32)

	// SetFov sets the field of view in radians and recomputes matrices.
	SetFov(fov float32)

	// SetOrthoSize sets the orthographic half-height and recomputes matrices.
	SetOrthoSize(size float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	SetFar(far float32)

	// SetController attaches a CameraController to the camera.
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                   &sync.Mutex{},
		up:                   [3]float32{0, 1, 0},
		projection:           ProjectionPerspective,
		fov:                  45.0 * (math.Pi / 180.0), // radians
		orthoSize:            1.0,
		aspect:               1.0,
		near:                 0.1,
		far:                  100.0,
		viewMatrix:           mgl32.Ident4(),
		inverseViewMatrix:    mgl32.Ident4(),
		projectionMatrix:     mgl32.Ident4(),
		viewProjectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) Projection() ProjectionType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) OrthoSize() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orthoSize
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

func (c *cameraImpl) ScreenToWorld(centered mgl32.Vec2, depth float32) mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()

	halfH := c.orthoSize
	if c.projection == ProjectionPerspective {
		halfH = float32(math.Tan(float64(c.fov)/2)) * depth
	}
	halfW := halfH * c.aspect

	viewPoint := mgl32.Vec4{centered[0] * halfW, centered[1] * halfH, -depth, 1}
	return c.inverseViewMatrix.Mul4x1(viewPoint).Vec3()
}

func (c *cameraImpl) WorldToScreen(world mgl32.Vec3) mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()

	clip := c.viewProjectionMatrix.Mul4x1(world.Vec4(1))
	if mgl32.Abs(clip[3]) < 1e-8 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{clip[0] / clip[3], clip[1] / clip[3]}
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseViewMatrix.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3().Normalize()
}

func (c *cameraImpl) WorldRotation() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.Mat4ToQuat(c.inverseViewMatrix).Normalize()
}

func (c *cameraImpl) WorldPosition() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseViewMatrix.Col(3).Vec3()
}

func (c *cameraImpl) SetUp(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetOrthoSize(size float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orthoSize = size
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recalculates the view, inverse view, projection and view-projection matrices.
// The view matrix is read from the attached controller; without one it stays at identity.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.controller != nil {
		c.viewMatrix = mgl32.LookAtV(c.controller.Position(), c.controller.Target(), mgl32.Vec3(c.up))
		c.inverseViewMatrix = c.viewMatrix.Inv()
	} else {
		c.viewMatrix = mgl32.Ident4()
		c.inverseViewMatrix = mgl32.Ident4()
	}

	switch c.projection {
	case ProjectionOrthographic:
		halfW := c.orthoSize * c.aspect
		c.projectionMatrix = mgl32.Ortho(-halfW, halfW, -c.orthoSize, c.orthoSize, c.near, c.far)
	default:
		c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	}

	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
