package arm

import "go.uber.org/zap"

// TapTriggerBuilderOption is a functional option for configuring a TapTrigger.
type TapTriggerBuilderOption func(*tapTrigger)

// WithTapLogger sets the trigger's logger. The trigger logs under the "tap" name.
func WithTapLogger(logger *zap.Logger) TapTriggerBuilderOption {
	return func(t *tapTrigger) {
		if logger != nil {
			t.logger = logger
		}
	}
}
