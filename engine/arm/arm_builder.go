package arm

import "go.uber.org/zap"

type ArmBuilderOption func(*armImpl)

// WithLogger sets the logger. The arm logs under the "arm" name.
func WithLogger(logger *zap.Logger) ArmBuilderOption {
	return func(a *armImpl) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithLowerHeight sets the world height the arm descends to.
//
// Parameters:
//   - height: the lowest point of the sequence
//
// Returns:
//   - ArmBuilderOption: a function that sets the lower height
func WithLowerHeight(height float32) ArmBuilderOption {
	return func(a *armImpl) {
		a.lowerHeight = height
	}
}

// WithMoveSpeed sets the easing rate. Each tick the arm covers moveSpeed·deltaTime of the remaining distance.
func WithMoveSpeed(speed float32) ArmBuilderOption {
	return func(a *armImpl) {
		a.moveSpeed = speed
	}
}

// WithTolerance sets how close the arm must get to a step's target for the step to complete.
func WithTolerance(tolerance float32) ArmBuilderOption {
	return func(a *armImpl) {
		if tolerance > 0 {
			a.tolerance = tolerance
		}
	}
}

// WithOnPhaseChange registers a callback invoked on every phase transition.
//
// Parameters:
//   - fn: called with the previous and the new phase
//
// Returns:
//   - ArmBuilderOption: a function that sets the phase observer
func WithOnPhaseChange(fn func(from, to Phase)) ArmBuilderOption {
	return func(a *armImpl) {
		a.onPhaseChange = fn
	}
}

// WithOnCatch registers a callback invoked when the arm reaches the bottom.
func WithOnCatch(fn func()) ArmBuilderOption {
	return func(a *armImpl) {
		a.onCatch = fn
	}
}
