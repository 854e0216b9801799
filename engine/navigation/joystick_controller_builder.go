package navigation

import "go.uber.org/zap"

type JoystickControllerBuilderOption func(*joystickController)

// WithLogger sets the logger. The controller logs under the "navigation" name.
func WithLogger(logger *zap.Logger) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUICamera sets the orthographic camera the joystick UI is drawn with.
//
// Parameters:
//   - cam: the UI camera
//
// Returns:
//   - JoystickControllerBuilderOption: a function that sets the UI camera
func WithUICamera(cam Camera) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.uiCamera = cam
	}
}

// WithSceneCamera sets the camera whose horizontal forward direction orients target motion.
//
// Parameters:
//   - cam: the scene camera
//
// Returns:
//   - JoystickControllerBuilderOption: a function that sets the scene camera
func WithSceneCamera(cam Camera) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.sceneCamera = cam
	}
}

// WithTarget sets the transform moved by the joystick. Its position at construction becomes the
// center of the travel limit.
//
// Parameters:
//   - target: the moved transform
//
// Returns:
//   - JoystickControllerBuilderOption: a function that sets the target
func WithTarget(target Transform) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.target = target
	}
}

// WithControlPlate sets the joystick background. Drags start on pointers inside it.
func WithControlPlate(plate ScreenAnchor) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.controlPlate = plate
	}
}

// WithControlDot sets the joystick knob.
func WithControlDot(dot ScreenAnchor) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.controlDot = dot
	}
}

// WithDistanceMarker sets the marker placed over the target and the label showing its distance.
// Both are optional; without them no marker is maintained.
//
// Parameters:
//   - marker: the screen anchor following the target
//   - label: the distance label
//
// Returns:
//   - JoystickControllerBuilderOption: a function that sets the distance marker
func WithDistanceMarker(marker ScreenAnchor, label Label) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.marker = marker
		c.label = label
	}
}

// WithMoveSpeed sets how far the target moves per tick for a unit joystick offset.
func WithMoveSpeed(speed float32) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.moveSpeed = speed
	}
}

// WithControlRadius sets the maximum joystick offset in UI camera world units.
func WithControlRadius(radius float32) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		if radius > 0 {
			c.controlRadius = radius
		}
	}
}

// WithMaxTravelDistance limits how far the target may move from its starting position.
// Moves that would cross the limit are rejected whole. A non-positive distance leaves travel unlimited.
//
// Parameters:
//   - distance: the travel limit in world units
//
// Returns:
//   - JoystickControllerBuilderOption: a function that enables the travel limit
func WithMaxTravelDistance(distance float32) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.hasTravelLimit = distance > 0
		c.maxTravelDistance = max(distance, 0)
	}
}

// WithApplyRotation makes the target face its direction of motion.
func WithApplyRotation(apply bool) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.applyRotation = apply
	}
}

// WithShowDebugView shows the distance marker.
func WithShowDebugView(show bool) JoystickControllerBuilderOption {
	return func(c *joystickController) {
		c.showDebugView = show
	}
}
