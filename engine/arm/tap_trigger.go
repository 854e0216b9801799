package arm

import "go.uber.org/zap"

// Catcher starts a catch sequence.
type Catcher interface {
	StartCatching() bool
}

// TapTrigger forwards taps on an object into a catch sequence.
type TapTrigger interface {
	// OnTap starts catching.
	//
	// Returns:
	//   - bool: true if a new sequence started
	OnTap() bool
}

type tapTrigger struct {
	catcher Catcher
	logger  *zap.Logger
}

var _ TapTrigger = &tapTrigger{}

// NewTapTrigger creates a TapTrigger for catcher.
//
// Parameters:
//   - catcher: the sequence taps start, usually an Arm
//   - options: functional options to configure the trigger
//
// Returns:
//   - TapTrigger: the newly created trigger
func NewTapTrigger(catcher Catcher, options ...TapTriggerBuilderOption) TapTrigger {
	t := &tapTrigger{
		catcher: catcher,
		logger:  zap.NewNop(),
	}
	for _, option := range options {
		option(t)
	}
	t.logger = t.logger.Named("tap")
	return t
}

func (t *tapTrigger) OnTap() bool {
	if t.catcher == nil {
		t.logger.Error("tap trigger has no arm")
		return false
	}
	started := t.catcher.StartCatching()
	t.logger.Debug("tap", zap.Bool("started", started))
	return started
}
