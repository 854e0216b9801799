package arm

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-nav/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type transition struct {
	from, to Phase
}

func newTestArm(t *testing.T, options ...ArmBuilderOption) (Arm, game_object.GameObject, *[]transition, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	obj := game_object.NewGameObject(game_object.WithPosition(mgl32.Vec3{2, 5, 3}))
	var transitions []transition
	base := []ArmBuilderOption{
		WithLogger(zap.New(core)),
		WithOnPhaseChange(func(from, to Phase) {
			transitions = append(transitions, transition{from, to})
		}),
	}
	a := NewArm(obj, append(base, options...)...)
	return a, obj, &transitions, logs
}

func TestCatchSequence(t *testing.T) {
	catches := 0
	a, obj, transitions, logs := newTestArm(t, WithOnCatch(func() { catches++ }))

	assert.Equal(t, float32(5), a.HigherHeight())
	assert.Equal(t, float32(-10), a.LowerHeight())
	require.True(t, a.StartCatching())
	require.Equal(t, PhaseLowering, a.Phase())

	const dt = 0.1
	ticks := 0
	for a.Phase() == PhaseLowering && ticks < 1000 {
		a.Tick(dt)
		ticks++
		y := obj.WorldPosition().Y()
		if a.Phase() == PhaseLowering {
			assert.Greater(t, mgl32.Abs(y+10), float32(1), "lowering ended late at tick %d", ticks)
		} else {
			assert.LessOrEqual(t, mgl32.Abs(y+10), float32(1), "lowering ended early at tick %d", ticks)
		}
	}
	require.Equal(t, PhaseRaising, a.Phase())
	assert.Equal(t, 1, catches)

	for a.Phase() == PhaseRaising && ticks < 2000 {
		a.Tick(dt)
		ticks++
	}
	require.Equal(t, PhaseIdle, a.Phase())

	pos := obj.WorldPosition()
	assert.LessOrEqual(t, mgl32.Abs(pos.Y()-5), float32(1))
	assert.InDelta(t, 2, pos.X(), 1e-4)
	assert.InDelta(t, 3, pos.Z(), 1e-4)

	assert.Equal(t, []transition{
		{PhaseIdle, PhaseLowering},
		{PhaseLowering, PhaseCatching},
		{PhaseCatching, PhaseRaising},
		{PhaseRaising, PhaseIdle},
	}, *transitions)

	for _, msg := range []string{"go down", "catching", "go up"} {
		assert.Equal(t, 1, logs.FilterMessage(msg).Len(), msg)
	}
}

func TestSingleSequence(t *testing.T) {
	a, _, _, logs := newTestArm(t)

	require.True(t, a.StartCatching())
	a.Tick(0.1)
	assert.False(t, a.StartCatching())
	assert.Equal(t, PhaseLowering, a.Phase())

	entries := logs.FilterMessage("catch sequence already running").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestCancel(t *testing.T) {
	a, obj, transitions, _ := newTestArm(t)

	a.Cancel()
	assert.Empty(t, *transitions, "cancel while idle is a no-op")

	require.True(t, a.StartCatching())
	a.Tick(0.1)
	a.Cancel()
	require.Equal(t, PhaseIdle, a.Phase())

	stopped := obj.WorldPosition()
	a.Tick(0.1)
	assert.Equal(t, stopped, obj.WorldPosition())

	assert.True(t, a.StartCatching(), "a new sequence can start after cancel")
}

func TestCancelFromCatchCallback(t *testing.T) {
	var a Arm
	a, _, _, _ = newTestArm(t, WithOnCatch(func() { a.Cancel() }))

	require.True(t, a.StartCatching())
	for i := 0; i < 1000 && a.Phase() == PhaseLowering; i++ {
		a.Tick(0.1)
	}
	assert.Equal(t, PhaseIdle, a.Phase())
}

func TestLargeDeltaDoesNotOvershoot(t *testing.T) {
	a, obj, _, _ := newTestArm(t)

	require.True(t, a.StartCatching())
	a.Tick(10)

	assert.InDelta(t, -10, obj.WorldPosition().Y(), 1e-4)
	assert.Equal(t, PhaseRaising, a.Phase())
}

func TestNilTransform(t *testing.T) {
	a := NewArm(nil)
	assert.False(t, a.StartCatching())
	a.Tick(0.1)
	assert.Equal(t, PhaseIdle, a.Phase())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "lowering", PhaseLowering.String())
	assert.Equal(t, "catching", PhaseCatching.String())
	assert.Equal(t, "raising", PhaseRaising.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
