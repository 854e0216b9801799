package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-nav/common"
	"github.com/Carmen-Shannon/oxy-nav/engine/arm"
	"github.com/Carmen-Shannon/oxy-nav/engine/config"
	"github.com/Carmen-Shannon/oxy-nav/engine/navigation"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestDemo(t *testing.T) (*demo, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	d := newDemo(config.Default(), zap.New(core), 16.0/9.0)
	require.True(t, d.nav.Enabled(), "demo wires every joystick collaborator")
	d.tick(0)
	return d, logs
}

func TestDemoDragMovesTarget(t *testing.T) {
	d, _ := newTestDemo(t)
	start := d.target.WorldPosition()

	center := d.plate.ScreenCenter()
	d.pointerDown(center)
	require.Equal(t, navigation.DragDragging, d.nav.State())

	d.pointerMove(center.Add(mgl32.Vec2{0.02, 0}))
	d.tick(1.0 / 60)
	assert.Greater(t, d.target.WorldPosition().Sub(start).Len(), float32(0))

	d.pointerUp()
	assert.Equal(t, navigation.DragReturning, d.nav.State())
}

func TestDemoTapBoxStartsCatch(t *testing.T) {
	d, logs := newTestDemo(t)

	d.pointerDown(mgl32.Vec2{0.99, 0.01})
	assert.Equal(t, arm.PhaseIdle, d.arm.Phase(), "taps away from the box are ignored")

	box := d.scene.Find(boxName)
	require.NotNil(t, box)
	d.pointerDown(common.ToNormalizedSpace(d.scene.Camera().WorldToScreen(box.WorldPosition())))
	assert.Equal(t, arm.PhaseLowering, d.arm.Phase())
	assert.Equal(t, 1, logs.FilterMessage("go down").Len())
}

func TestDemoKeys(t *testing.T) {
	d, logs := newTestDemo(t)

	d.keyDown(common.KeySpace)
	d.keyDown(common.KeySpace)
	assert.Equal(t, arm.PhaseLowering, d.arm.Phase())
	assert.Zero(t, logs.FilterMessage("catch sequence already running").Len(), "held keys do not repeat")

	d.keyDown(common.KeyC)
	assert.Equal(t, arm.PhaseIdle, d.arm.Phase())

	require.False(t, d.debugView)
	d.keyDown(common.KeyV)
	assert.True(t, d.debugView)
	d.keyUp(common.KeyV)
	d.keyDown(common.KeyV)
	assert.False(t, d.debugView)
}

func TestDemoPanAndOrbit(t *testing.T) {
	d, _ := newTestDemo(t)
	ctrl := d.scene.Camera().Controller()
	target := ctrl.Target()
	azimuth := ctrl.Azimuth()

	d.keyDown(common.KeyF)
	require.False(t, d.follow.enabled)
	d.keyDown(common.KeyD)
	d.tick(1.0 / 60)
	d.keyUp(common.KeyD)
	assert.NotEqual(t, target, ctrl.Target())

	d.orbitMove(100, 0)
	assert.Equal(t, azimuth, ctrl.Azimuth(), "moves without the middle button do not orbit")

	d.orbitStart(0, 0)
	d.orbitMove(100, 0)
	d.orbitEnd()
	assert.Greater(t, ctrl.Azimuth(), azimuth)
}

func TestDemoCameraFollowsTarget(t *testing.T) {
	d, _ := newTestDemo(t)
	ctrl := d.scene.Camera().Controller()

	d.target.SetWorldPosition(mgl32.Vec3{100, 0, -100})
	for i := 0; i < 300; i++ {
		d.tick(1.0 / 60)
	}
	got := ctrl.Target()
	assert.InDeltaSlice(t, []float32{100, 0, -100}, got[:], 1)
}

func TestDemoPauseStopsBehaviours(t *testing.T) {
	d, _ := newTestDemo(t)
	assert.Equal(t, 3, d.scene.Count())

	d.keyDown(common.KeySpace)
	require.Equal(t, arm.PhaseLowering, d.arm.Phase())
	armObj := d.scene.Find("arm")
	require.NotNil(t, armObj)
	height := armObj.WorldPosition()[1]

	d.keyDown(common.KeyP)
	require.False(t, d.scene.Active())
	d.tick(0.1)
	assert.Equal(t, height, armObj.WorldPosition()[1], "paused scenes do not move the arm")

	d.keyUp(common.KeyP)
	d.keyDown(common.KeyP)
	d.tick(0.1)
	assert.Less(t, armObj.WorldPosition()[1], height)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		opts := &options{v: config.NewViper()}
		cfg, err := opts.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("file and environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "navdemo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("engine:\n  tick_rate: 30\nnavigation:\n  move_speed: 2\n"), 0o600))
		t.Setenv("NAVDEMO_ENGINE_TICK_RATE", "120")

		opts := &options{configFile: path, v: config.NewViper()}
		cfg, err := opts.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 120, cfg.Engine.TickRate)
		assert.Equal(t, float32(2), cfg.Navigation.MoveSpeed)
	})

	t.Run("flags", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "navdemo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("engine:\n  tick_rate: 30\n"), 0o600))
		t.Setenv("NAVDEMO_LOGGING_LEVEL", "warn")
		t.Setenv("NAVDEMO_ENGINE_PROFILE", "true")

		opts := &options{v: config.NewViper()}
		cmd := buildRootCmd(opts)
		require.NoError(t, cmd.ParseFlags([]string{
			"-c", path,
			"--tick-rate", "90",
			"--max-travel", "500",
			"--debug-view",
			"--log-level", "debug",
			"--log-file", filepath.Join(t.TempDir(), "navdemo.log"),
		}))

		cfg, err := opts.loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 90, cfg.Engine.TickRate, "flags beat the config file")
		assert.Equal(t, float32(500), cfg.Navigation.MaxTravelDistance)
		assert.True(t, cfg.Navigation.ShowDebugView)
		assert.Equal(t, "debug", cfg.Logging.Level, "flags beat the environment")
		assert.True(t, cfg.Engine.Profile, "environment applies when the flag is absent")
		assert.NotEmpty(t, cfg.Logging.File)
	})

	t.Run("invalid flag value", func(t *testing.T) {
		opts := &options{v: config.NewViper()}
		cmd := buildRootCmd(opts)
		require.NoError(t, cmd.ParseFlags([]string{"--tick-rate=-3"}))

		_, err := opts.loadConfig()
		assert.ErrorIs(t, err, config.ErrInvalid)
	})

	t.Run("missing file", func(t *testing.T) {
		opts := &options{configFile: filepath.Join(t.TempDir(), "missing.yaml"), v: config.NewViper()}
		_, err := opts.loadConfig()
		assert.Error(t, err)
	})
}
