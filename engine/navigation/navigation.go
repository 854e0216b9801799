package navigation

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrMissingCollaborator is reported when a required camera, transform or UI element was not supplied.
	// A controller in this state is inert.
	ErrMissingCollaborator = errors.New("navigation: missing collaborator")

	// ErrTravelLimit is returned when a move would take the target farther than the travel limit
	// from its starting position. The move is rejected and the target is left unchanged.
	ErrTravelLimit = errors.New("navigation: reach maximum navigation travel distance")
)

// DragState is the joystick interaction state.
type DragState int

const (
	// DragIdle means no pointer is held and the control dot is centered.
	DragIdle DragState = iota
	// DragDragging means a pointer went down inside the control plate and has not been released.
	DragDragging
	// DragReturning means the pointer was released and the control dot is easing back to the center.
	DragReturning
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	case DragReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// ControlPosition is the clamped joystick offset.
type ControlPosition struct {
	// ScreenSpace is the control dot center in the dot's parent-local space.
	ScreenSpace mgl32.Vec2
	// WorldSpace is the clamped pointer minus the plate center, in UI camera world units.
	WorldSpace mgl32.Vec3
}

// Camera is the camera capability used by the controller. Both the orthographic UI camera
// and the scene camera are consumed through it.
type Camera interface {
	// ScreenToWorld unprojects a centered screen point ([-1,1], y up) at the given view depth.
	ScreenToWorld(centered mgl32.Vec2, depth float32) mgl32.Vec3
	// WorldToScreen projects a world point to centered screen space.
	WorldToScreen(world mgl32.Vec3) mgl32.Vec2
	Forward() mgl32.Vec3
	WorldRotation() mgl32.Quat
	WorldPosition() mgl32.Vec3
}

// Transform is a world transform the controller moves.
type Transform interface {
	WorldPosition() mgl32.Vec3
	SetWorldPosition(pos mgl32.Vec3)
	WorldRotation() mgl32.Quat
	SetWorldRotation(rot mgl32.Quat)
}

// ScreenAnchor is a positioned screen-space UI element.
type ScreenAnchor interface {
	// Center returns the anchor center in parent-local space.
	Center() mgl32.Vec2
	// SetCenter moves the anchor center in parent-local space.
	SetCenter(c mgl32.Vec2)
	// ScreenCenter returns the anchor center in normalized screen space.
	ScreenCenter() mgl32.Vec2
	ContainsScreenPoint(p mgl32.Vec2) bool
	ScreenPointToParentPoint(p mgl32.Vec2) mgl32.Vec2
	SetEnabled(enabled bool)
}

// Label is a text element.
type Label interface {
	SetText(text string)
	SetEnabled(enabled bool)
}
