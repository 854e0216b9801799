package arm

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-nav/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type countingCatcher struct {
	calls int
}

func (c *countingCatcher) StartCatching() bool {
	c.calls++
	return c.calls == 1
}

func TestTapTrigger(t *testing.T) {
	t.Run("forwards taps", func(t *testing.T) {
		c := &countingCatcher{}
		trigger := NewTapTrigger(c)

		assert.True(t, trigger.OnTap())
		assert.False(t, trigger.OnTap())
		assert.Equal(t, 2, c.calls)
	})

	t.Run("drives an arm", func(t *testing.T) {
		a := NewArm(game_object.NewGameObject(game_object.WithPosition(mgl32.Vec3{0, 5, 0})))
		trigger := NewTapTrigger(a)

		assert.True(t, trigger.OnTap())
		assert.Equal(t, PhaseLowering, a.Phase())
		assert.False(t, trigger.OnTap(), "tap during a sequence is ignored")
	})

	t.Run("without arm", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		trigger := NewTapTrigger(nil, WithTapLogger(zap.New(core)), WithTapLogger(nil))

		assert.False(t, trigger.OnTap())
		entries := logs.FilterMessage("tap trigger has no arm").All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, "tap", entries[0].LoggerName)
		}
	})
}
