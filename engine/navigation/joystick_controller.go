package navigation

import (
	"fmt"
	"math"
	"strings"

	"github.com/Carmen-Shannon/oxy-nav/common"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	defaultControlRadius = 2
	defaultMoveSpeed     = 1

	// returnLerp is the fraction of the remaining distance the control dot covers per tick while returning.
	returnLerp = 0.2
	// returnEpsilon is the distance at which a returning dot snaps to idle.
	returnEpsilon = 0.001

	// unprojectDepth is the view depth pointer samples are unprojected at.
	unprojectDepth = 1
)

type joystickController struct {
	logger *zap.Logger

	uiCamera     Camera
	sceneCamera  Camera
	target       Transform
	controlPlate ScreenAnchor
	controlDot   ScreenAnchor
	marker       ScreenAnchor
	label        Label

	moveSpeed         float32
	controlRadius     float32
	hasTravelLimit    bool
	maxTravelDistance float32
	applyRotation     bool
	showDebugView     bool

	state      DragState
	control    ControlPosition
	hasControl bool
	origin     mgl32.Vec3
	err        error
}

// JoystickController drags a target object around the scene from an on-screen joystick.
//
// A pointer pressed inside the control plate starts a drag. While dragging, every tick moves the
// target along the clamped joystick offset, expressed relative to the scene camera's horizontal
// forward direction. On release the control dot eases back to the plate center.
//
// All methods must be called from a single goroutine; the engine tick loop serializes them.
type JoystickController interface {
	// OnPointerDown starts a drag if pos lies inside the control plate.
	//
	// Parameters:
	//   - pos: pointer position in normalized screen space
	OnPointerDown(pos mgl32.Vec2)

	// OnPointerMove updates the joystick offset while dragging. It is ignored otherwise.
	//
	// Parameters:
	//   - pos: pointer position in normalized screen space
	OnPointerMove(pos mgl32.Vec2)

	// OnPointerUp ends a drag and starts returning the control dot.
	OnPointerUp()

	// Tick advances the controller by one frame.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick
	Tick(deltaTime float32)

	// ComputeClampedOffset maps a pointer to a joystick offset bounded by radius around center.
	//
	// Parameters:
	//   - pointerPos: pointer position in normalized screen space
	//   - center: joystick center in normalized screen space
	//   - radius: maximum offset in UI camera world units
	//
	// Returns:
	//   - ControlPosition: the dot position and the clamped world offset
	ComputeClampedOffset(pointerPos, center mgl32.Vec2, radius float32) ControlPosition

	// AdvanceTarget moves the target one step along direction, given in the camera-relative
	// horizontal frame (-Z forward, +X right).
	//
	// Parameters:
	//   - direction: the unscaled motion direction
	//
	// Returns:
	//   - error: ErrTravelLimit if the move was rejected, the setup error if the controller is inert
	AdvanceTarget(direction mgl32.Vec3) error

	// State returns the current drag state.
	State() DragState

	// ControlPosition returns the last computed joystick offset.
	ControlPosition() ControlPosition

	// Origin returns the target position recorded at construction, the center of the travel limit.
	Origin() mgl32.Vec3

	// SetShowDebugView toggles the distance marker.
	SetShowDebugView(show bool)

	// Enabled reports whether the controller has every collaborator it needs.
	Enabled() bool

	// Err returns the setup error of an inert controller, wrapping ErrMissingCollaborator.
	Err() error
}

var _ JoystickController = &joystickController{}

// NewJoystickController creates a JoystickController from the given options.
//
// If a required collaborator (UI camera, scene camera, target, control plate or control dot) is
// missing the controller is returned inert: every operation is a no-op and Err reports what is missing.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - JoystickController: the newly created controller
func NewJoystickController(options ...JoystickControllerBuilderOption) JoystickController {
	c := &joystickController{
		logger:        zap.NewNop(),
		moveSpeed:     defaultMoveSpeed,
		controlRadius: defaultControlRadius,
	}
	for _, option := range options {
		option(c)
	}
	c.logger = c.logger.Named("navigation")

	var missing []string
	if c.uiCamera == nil {
		missing = append(missing, "ui camera")
	}
	if c.sceneCamera == nil {
		missing = append(missing, "scene camera")
	}
	if c.target == nil {
		missing = append(missing, "target")
	}
	if c.controlPlate == nil {
		missing = append(missing, "control plate")
	}
	if c.controlDot == nil {
		missing = append(missing, "control dot")
	}
	if len(missing) > 0 {
		c.err = fmt.Errorf("%w: %s", ErrMissingCollaborator, strings.Join(missing, ", "))
		c.logger.Error("controller disabled", zap.Error(c.err))
		return c
	}

	c.origin = c.target.WorldPosition()
	return c
}

func (c *joystickController) Enabled() bool {
	return c.err == nil
}

func (c *joystickController) Err() error {
	return c.err
}

func (c *joystickController) State() DragState {
	return c.state
}

func (c *joystickController) ControlPosition() ControlPosition {
	return c.control
}

func (c *joystickController) Origin() mgl32.Vec3 {
	return c.origin
}

func (c *joystickController) SetShowDebugView(show bool) {
	c.showDebugView = show
}

func (c *joystickController) OnPointerDown(pos mgl32.Vec2) {
	if !c.Enabled() {
		return
	}
	if !c.controlPlate.ContainsScreenPoint(pos) {
		return
	}
	c.state = DragDragging
	c.moveControlDot(pos)
	c.logger.Debug("drag started", zap.Stringer("state", c.state))
}

func (c *joystickController) OnPointerMove(pos mgl32.Vec2) {
	if !c.Enabled() {
		return
	}
	if c.state != DragDragging {
		c.logger.Debug("pointer move ignored", zap.Stringer("state", c.state))
		return
	}
	c.moveControlDot(pos)
}

func (c *joystickController) OnPointerUp() {
	if !c.Enabled() {
		return
	}
	if c.state != DragDragging {
		c.logger.Debug("pointer up ignored", zap.Stringer("state", c.state))
		return
	}
	c.state = DragReturning
	c.logger.Debug("drag released")
}

func (c *joystickController) Tick(deltaTime float32) {
	if !c.Enabled() {
		return
	}

	switch c.state {
	case DragDragging:
		if c.hasControl {
			// rejected moves are logged by AdvanceTarget
			_ = c.AdvanceTarget(directionFromOffset(c.control.WorldSpace))
		}
	case DragReturning:
		c.centerControlDot()
	}

	c.updateDistanceMarker()
}

func (c *joystickController) ComputeClampedOffset(pointerPos, center mgl32.Vec2, radius float32) ControlPosition {
	if !c.Enabled() {
		return ControlPosition{}
	}

	pointerWorld := c.uiCamera.ScreenToWorld(common.ToCenteredSpace(pointerPos), unprojectDepth)
	centerWorld := c.uiCamera.ScreenToWorld(common.ToCenteredSpace(center), unprojectDepth)

	clamped := ClampToRadius(pointerWorld, centerWorld, radius)

	screen := common.ToNormalizedSpace(c.uiCamera.WorldToScreen(clamped))
	return ControlPosition{
		ScreenSpace: c.controlDot.ScreenPointToParentPoint(screen),
		WorldSpace:  clamped.Sub(centerWorld),
	}
}

func (c *joystickController) AdvanceTarget(direction mgl32.Vec3) error {
	if !c.Enabled() {
		return c.err
	}

	motion := c.cameraYaw().Rotate(direction)

	pos := c.target.WorldPosition().Add(motion.Mul(c.moveSpeed))
	if c.hasTravelLimit && pos.Sub(c.origin).Len() > c.maxTravelDistance {
		c.logger.Warn("reach maximum navigation travel distance",
			zap.Float32("max", c.maxTravelDistance),
			zap.Float32("distance", pos.Sub(c.origin).Len()),
		)
		return ErrTravelLimit
	}

	if c.applyRotation {
		if rot, ok := common.YawTowards(motion); ok {
			c.target.SetWorldRotation(rot)
		}
	}
	c.target.SetWorldPosition(pos)
	return nil
}

// ClampToRadius returns point, or the point at distance radius from center in the direction of
// point when point lies farther than radius. A non-positive radius collapses every point onto center.
//
// Parameters:
//   - point: the point to clamp
//   - center: the center of the bounding sphere
//   - radius: the sphere radius
//
// Returns:
//   - mgl32.Vec3: the clamped point
func ClampToRadius(point, center mgl32.Vec3, radius float32) mgl32.Vec3 {
	if radius <= 0 {
		return center
	}
	if point.Sub(center).Len() > radius {
		return common.MoveTowards(center, point, radius)
	}
	return point
}

// directionFromOffset maps a joystick offset (x right, y up on screen) to the horizontal motion frame,
// where screen up is forward (-Z).
func directionFromOffset(offset mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{offset[0], 0, -offset[1]}
}

func (c *joystickController) moveControlDot(pos mgl32.Vec2) {
	c.control = c.ComputeClampedOffset(pos, c.controlPlate.ScreenCenter(), c.controlRadius)
	c.hasControl = true
	c.controlDot.SetCenter(c.control.ScreenSpace)
}

func (c *joystickController) centerControlDot() {
	current := c.controlDot.Center()
	target := c.controlPlate.Center()
	if current.Sub(target).Len() > returnEpsilon {
		c.controlDot.SetCenter(common.LerpVec2(current, target, returnLerp))
		return
	}
	c.state = DragIdle
	c.logger.Debug("control dot centered")
}

// cameraYaw returns the rotation taking WorldForward onto the scene camera's horizontal forward.
// A camera looking straight down has no horizontal forward; its up vector is used instead.
func (c *joystickController) cameraYaw() mgl32.Quat {
	if rot, ok := common.YawTowards(c.sceneCamera.Forward()); ok {
		return rot
	}
	if rot, ok := common.YawTowards(c.sceneCamera.WorldRotation().Rotate(common.WorldUp)); ok {
		return rot
	}
	return mgl32.QuatIdent()
}

func (c *joystickController) updateDistanceMarker() {
	if c.marker == nil || c.label == nil {
		return
	}

	targetPos := c.target.WorldPosition()

	roll := common.Roll(c.sceneCamera.WorldRotation())
	upsideDown := roll > math.Pi*0.9 && roll < math.Pi*1.1
	visible := !upsideDown && c.showDebugView
	c.marker.SetEnabled(visible)
	c.label.SetEnabled(visible)

	screen := common.ToNormalizedSpace(c.sceneCamera.WorldToScreen(targetPos))
	c.marker.SetCenter(c.marker.ScreenPointToParentPoint(screen))

	// scene units are centimeters
	distance := common.HorizontalDistance(c.sceneCamera.WorldPosition(), targetPos) / 100
	c.label.SetText(fmt.Sprintf("%.2f", distance))
}
