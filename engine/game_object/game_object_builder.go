package game_object

import "github.com/go-gl/mathgl/mgl32"

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithName sets the display name of the GameObject.
//
// Parameters:
//   - name: the name used in logs
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the name
func WithName(name string) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.name = name
	}
}

// WithEnabled sets whether the GameObject starts enabled.
//
// Parameters:
//   - enabled: false to start disabled
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial world position of the GameObject.
//
// Parameters:
//   - pos: the world position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(pos mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = pos
	}
}

// WithRotation sets the initial world rotation of the GameObject.
//
// Parameters:
//   - rot: the world rotation
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(rot mgl32.Quat) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = rot.Normalize()
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - scale: per-axis scale factors
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(scale mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = scale
	}
}
