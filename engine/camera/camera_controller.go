package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController owns the positional state (position, target) a Camera reads its view from.
// It embeds orbitCameraController and planarCameraController so orbit and planar controls
// work on a single controller instance.
type CameraController interface {
	orbitCameraController
	planarCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// SetTarget sets the look-at/pivot point and recomputes position from spherical coordinates.
	//
	// Parameters:
	//   - target: world-space coordinates
	SetTarget(target mgl32.Vec3)

	// Zoom adjusts the camera's distance by modifying orbit radius.
	// Positive delta zooms in (closer to target).
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float32)

	// Follow moves the pivot a fraction t of the way toward point, keeping the orbit offset.
	// t is clamped to [0,1].
	Follow(point mgl32.Vec3, t float32)
}

// orbitCameraController provides third-person orbit controls using spherical coordinates
// (radius, azimuth, elevation) relative to the target.
type orbitCameraController interface {
	// Orbit rotates the camera around the target. Deltas are pointer travel in pixels, scaled by the
	// orbit speed; positive dy tilts the camera down toward the ground.
	Orbit(dx, dy float32)

	// Radius returns the current orbit radius (distance from target).
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis in radians.
	Azimuth() float32

	// SetAzimuth sets the horizontal angle directly and recomputes position.
	SetAzimuth(azimuth float32)

	// Elevation returns the current vertical angle from the horizontal plane in radians.
	Elevation() float32

	// SetElevation sets the vertical angle directly, clamped to min/max bounds.
	SetElevation(elevation float32)
}

// planarCameraController translates position and target together along the camera's local
// axes, preserving the orbit relationship.
type planarCameraController interface {
	// PanRight translates the camera along its local right axis.
	// Positive delta moves right, negative moves left.
	PanRight(delta float32)

	// PanUp translates the camera along its local up axis.
	PanUp(delta float32)

	// PanForward translates the camera along its forward axis flattened onto the ground plane.
	PanForward(delta float32)
}
