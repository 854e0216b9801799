package arm

import (
	"github.com/Carmen-Shannon/oxy-nav/common"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	defaultLowerHeight = -10
	defaultMoveSpeed   = 1.5
	defaultTolerance   = 1
)

// Phase is a step of the catch sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLowering
	PhaseCatching
	PhaseRaising
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLowering:
		return "lowering"
	case PhaseCatching:
		return "catching"
	case PhaseRaising:
		return "raising"
	default:
		return "unknown"
	}
}

// Transform is the world transform the arm moves.
type Transform interface {
	WorldPosition() mgl32.Vec3
	SetWorldPosition(pos mgl32.Vec3)
}

type armImpl struct {
	logger    *zap.Logger
	transform Transform

	lowerHeight  float32
	higherHeight float32
	moveSpeed    float32
	tolerance    float32

	onPhaseChange func(from, to Phase)
	onCatch       func()

	phase  Phase
	target mgl32.Vec3
}

// Arm lowers an object, catches, and raises it back to the height it was created at.
// Only one sequence runs at a time. It is advanced by Tick and must be driven from a single goroutine.
type Arm interface {
	// StartCatching begins a sequence.
	//
	// Returns:
	//   - bool: false if a sequence is already running or the arm has no transform
	StartCatching() bool

	// Tick eases the arm toward the current step's target and advances the sequence when the
	// arm is within tolerance of it.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick
	Tick(deltaTime float32)

	// Cancel stops a running sequence, leaving the arm where it is.
	Cancel()

	// Phase returns the current step.
	Phase() Phase

	// LowerHeight returns the world height the arm descends to.
	LowerHeight() float32

	// HigherHeight returns the world height the arm returns to, recorded at construction.
	HigherHeight() float32
}

var _ Arm = &armImpl{}

// NewArm creates an Arm moving transform.
//
// Parameters:
//   - transform: the arm's world transform
//   - options: functional options to configure the arm
//
// Returns:
//   - Arm: the newly created arm
func NewArm(transform Transform, options ...ArmBuilderOption) Arm {
	a := &armImpl{
		logger:      zap.NewNop(),
		transform:   transform,
		lowerHeight: defaultLowerHeight,
		moveSpeed:   defaultMoveSpeed,
		tolerance:   defaultTolerance,
	}
	for _, option := range options {
		option(a)
	}
	a.logger = a.logger.Named("arm")

	if transform == nil {
		a.logger.Error("arm has no transform")
	} else {
		a.higherHeight = transform.WorldPosition().Y()
	}
	return a
}

func (a *armImpl) Phase() Phase {
	return a.phase
}

func (a *armImpl) LowerHeight() float32 {
	return a.lowerHeight
}

func (a *armImpl) HigherHeight() float32 {
	return a.higherHeight
}

func (a *armImpl) StartCatching() bool {
	if a.transform == nil {
		return false
	}
	if a.phase != PhaseIdle {
		a.logger.Warn("catch sequence already running", zap.Stringer("phase", a.phase))
		return false
	}
	a.logger.Info("go down")
	a.beginMove(PhaseLowering, a.lowerHeight)
	return true
}

func (a *armImpl) Cancel() {
	if a.phase == PhaseIdle {
		return
	}
	a.logger.Info("catch sequence cancelled", zap.Stringer("phase", a.phase))
	a.setPhase(PhaseIdle)
}

func (a *armImpl) Tick(deltaTime float32) {
	if a.phase != PhaseLowering && a.phase != PhaseRaising {
		return
	}

	// a factor above 1 would overshoot the target
	t := mgl32.Clamp(a.moveSpeed*deltaTime, 0, 1)
	pos := common.LerpVec3(a.transform.WorldPosition(), a.target, t)
	a.transform.SetWorldPosition(pos)

	if a.target.Sub(pos).Len() > a.tolerance {
		return
	}

	switch a.phase {
	case PhaseLowering:
		a.catch()
	case PhaseRaising:
		a.setPhase(PhaseIdle)
	}
}

// catch runs the instantaneous catching step and starts raising.
func (a *armImpl) catch() {
	a.setPhase(PhaseCatching)
	a.logger.Info("catching")
	if a.onCatch != nil {
		a.onCatch()
	}
	// the callback may have cancelled
	if a.phase != PhaseCatching {
		return
	}
	a.logger.Info("go up")
	a.beginMove(PhaseRaising, a.higherHeight)
}

func (a *armImpl) beginMove(phase Phase, height float32) {
	target := a.transform.WorldPosition()
	target[1] = height
	a.target = target
	a.setPhase(phase)
}

func (a *armImpl) setPhase(phase Phase) {
	from := a.phase
	a.phase = phase
	if a.onPhaseChange != nil && from != phase {
		a.onPhaseChange(from, phase)
	}
}
