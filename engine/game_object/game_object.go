package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	mu *sync.Mutex

	id      uint64
	name    string
	enabled atomic.Bool

	position mgl32.Vec3
	rotation mgl32.Quat
	scale    mgl32.Vec3
}

// GameObject is a scene entity with a world transform. Behaviours such as the navigation
// controller and the arm read and write its transform through the world-space accessors.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// SetID assigns the object's identifier. Scenes assign IDs to objects added without one.
	//
	// Parameters:
	//   - id: the new ID
	SetID(id uint64)

	// Name returns the object's display name.
	//
	// Returns:
	//   - string: the name
	Name() string

	// Enabled returns whether this object is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled sets whether the object is enabled.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// WorldPosition returns the object's position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	WorldPosition() mgl32.Vec3

	// SetWorldPosition sets the object's position in world space.
	//
	// Parameters:
	//   - pos: the new position
	SetWorldPosition(pos mgl32.Vec3)

	// WorldRotation returns the object's rotation in world space.
	//
	// Returns:
	//   - mgl32.Quat: the rotation
	WorldRotation() mgl32.Quat

	// SetWorldRotation sets the object's rotation in world space.
	//
	// Parameters:
	//   - rot: the new rotation
	SetWorldRotation(rot mgl32.Quat)

	// Scale returns the object's scale.
	Scale() mgl32.Vec3

	// SetScale sets the object's scale.
	SetScale(scale mgl32.Vec3)

	// ModelMatrix builds the translation * rotation * scale matrix of the object.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects are enabled, unrotated and unit-scaled unless an option says otherwise.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:       &sync.Mutex{},
		rotation: mgl32.QuatIdent(),
		scale:    mgl32.Vec3{1, 1, 1},
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) Name() string {
	return g.name
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) WorldPosition() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *gameObject) SetWorldPosition(pos mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.position = pos
}

func (g *gameObject) WorldRotation() mgl32.Quat {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotation
}

func (g *gameObject) SetWorldRotation(rot mgl32.Quat) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = rot.Normalize()
}

func (g *gameObject) Scale() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scale
}

func (g *gameObject) SetScale(scale mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = scale
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	t := mgl32.Translate3D(g.position[0], g.position[1], g.position[2])
	s := mgl32.Scale3D(g.scale[0], g.scale[1], g.scale[2])
	return t.Mul4(g.rotation.Mat4()).Mul4(s)
}
