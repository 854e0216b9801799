package navigation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-nav/common"
	"github.com/Carmen-Shannon/oxy-nav/engine/camera"
	"github.com/Carmen-Shannon/oxy-nav/engine/game_object"
	"github.com/Carmen-Shannon/oxy-nav/engine/ui"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubCamera struct {
	forward  mgl32.Vec3
	rotation mgl32.Quat
	position mgl32.Vec3
	screen   mgl32.Vec2
}

func (s *stubCamera) ScreenToWorld(centered mgl32.Vec2, depth float32) mgl32.Vec3 {
	return mgl32.Vec3{centered[0], centered[1], -depth}
}
func (s *stubCamera) WorldToScreen(mgl32.Vec3) mgl32.Vec2 { return s.screen }
func (s *stubCamera) Forward() mgl32.Vec3               { return s.forward }
func (s *stubCamera) WorldRotation() mgl32.Quat         { return s.rotation }
func (s *stubCamera) WorldPosition() mgl32.Vec3         { return s.position }

func newStubCamera() *stubCamera {
	return &stubCamera{forward: common.WorldForward, rotation: mgl32.QuatIdent()}
}

type fixture struct {
	ctrl   JoystickController
	scene  *stubCamera
	target game_object.GameObject
	plate  ui.ScreenTransform
	dot    ui.ScreenTransform
	marker ui.ScreenTransform
	label  *ui.Text
	logs   *observer.ObservedLogs
}

// newFixture builds a controller whose UI camera spans 10 world units per centered screen unit,
// so the default radius of 2 covers 0.1 of normalized screen width around the plate center.
func newFixture(options ...JoystickControllerBuilderOption) *fixture {
	core, logs := observer.New(zapcore.DebugLevel)
	f := &fixture{
		scene:  newStubCamera(),
		target: game_object.NewGameObject(game_object.WithName("target")),
		plate:  ui.NewScreenTransform(ui.WithName("plate"), ui.WithAnchors(ui.RectFromCenter(mgl32.Vec2{0, 0}, mgl32.Vec2{0.4, 0.4}))),
		dot:    ui.NewScreenTransform(ui.WithName("dot"), ui.WithAnchors(ui.RectFromCenter(mgl32.Vec2{0, 0}, mgl32.Vec2{0.1, 0.1}))),
		marker: ui.NewScreenTransform(ui.WithName("marker"), ui.WithAnchors(ui.RectFromCenter(mgl32.Vec2{0, 0}, mgl32.Vec2{0.05, 0.05}))),
		label:  ui.NewText(""),
		logs:   logs,
	}
	uiCam := camera.NewCamera(
		camera.WithProjection(camera.ProjectionOrthographic),
		camera.WithOrthoSize(10),
		camera.WithAspect(1),
	)

	base := []JoystickControllerBuilderOption{
		WithLogger(zap.New(core)),
		WithUICamera(uiCam),
		WithSceneCamera(f.scene),
		WithTarget(f.target),
		WithControlPlate(f.plate),
		WithControlDot(f.dot),
		WithDistanceMarker(f.marker, f.label),
	}
	f.ctrl = NewJoystickController(append(base, options...)...)
	return f
}

func assertVec3Near(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-4, "want %v, got %v", want, got)
}

func assertVec2Near(t *testing.T, want, got mgl32.Vec2) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], 1e-4, "want %v, got %v", want, got)
}

func TestMissingCollaborator(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	target := game_object.NewGameObject()
	ctrl := NewJoystickController(WithLogger(zap.New(core)), WithTarget(target))

	assert.False(t, ctrl.Enabled())
	require.ErrorIs(t, ctrl.Err(), ErrMissingCollaborator)
	assert.Contains(t, ctrl.Err().Error(), "ui camera")
	assert.NotContains(t, ctrl.Err().Error(), "target")

	entries := logs.FilterMessage("controller disabled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)

	// inert controllers ignore everything
	ctrl.OnPointerDown(mgl32.Vec2{0.5, 0.5})
	ctrl.OnPointerMove(mgl32.Vec2{0.6, 0.5})
	ctrl.Tick(0.016)
	ctrl.OnPointerUp()
	assert.Equal(t, DragIdle, ctrl.State())
	assert.ErrorIs(t, ctrl.AdvanceTarget(mgl32.Vec3{1, 0, 0}), ErrMissingCollaborator)
	assert.Equal(t, mgl32.Vec3{}, target.WorldPosition())
}

func TestClampToRadius(t *testing.T) {
	center := mgl32.Vec3{1, 1, -1}

	t.Run("inside is unchanged", func(t *testing.T) {
		p := mgl32.Vec3{2, 1.5, -1}
		assert.Equal(t, p, ClampToRadius(p, center, 2))
	})

	t.Run("outside lands on the radius", func(t *testing.T) {
		got := ClampToRadius(mgl32.Vec3{1, 6, -1}, center, 2)
		assertVec3Near(t, mgl32.Vec3{1, 3, -1}, got)
	})

	t.Run("non-positive radius collapses onto the center", func(t *testing.T) {
		for _, radius := range []float32{0, -2} {
			got := ClampToRadius(mgl32.Vec3{1, 6, -1}, center, radius)
			assert.Equal(t, center, got, "radius %v", radius)
		}
	})
}

func TestComputeClampedOffset(t *testing.T) {
	f := newFixture()
	center := mgl32.Vec2{0.5, 0.5}

	t.Run("pointer five units right clamps to two", func(t *testing.T) {
		// 0.75 normalized is 0.5 centered, 5 world units on the UI camera
		got := f.ctrl.ComputeClampedOffset(mgl32.Vec2{0.75, 0.5}, center, 2)
		assertVec3Near(t, mgl32.Vec3{2, 0, 0}, got.WorldSpace)
		assertVec2Near(t, mgl32.Vec2{0.2, 0}, got.ScreenSpace)
	})

	t.Run("pointer within radius is unchanged", func(t *testing.T) {
		got := f.ctrl.ComputeClampedOffset(mgl32.Vec2{0.55, 0.46}, center, 2)
		assertVec3Near(t, mgl32.Vec3{1, 0.8, 0}, got.WorldSpace)
		assertVec2Near(t, mgl32.Vec2{0.1, 0.08}, got.ScreenSpace)
	})

	t.Run("offset never exceeds radius", func(t *testing.T) {
		for x := float32(0); x <= 1; x += 0.05 {
			for y := float32(0); y <= 1; y += 0.05 {
				got := f.ctrl.ComputeClampedOffset(mgl32.Vec2{x, y}, center, 2)
				assert.LessOrEqual(t, got.WorldSpace.Len(), float32(2+1e-4), "pointer (%v, %v)", x, y)
			}
		}
	})
}

func TestDragLifecycle(t *testing.T) {
	f := newFixture()

	f.ctrl.OnPointerDown(mgl32.Vec2{0.9, 0.9})
	assert.Equal(t, DragIdle, f.ctrl.State(), "pointer outside the plate")

	f.ctrl.OnPointerDown(mgl32.Vec2{0.58, 0.5})
	require.Equal(t, DragDragging, f.ctrl.State())
	assertVec2Near(t, mgl32.Vec2{0.16, 0}, f.dot.Center())
	assertVec3Near(t, mgl32.Vec3{1.6, 0, 0}, f.ctrl.ControlPosition().WorldSpace)

	f.ctrl.Tick(0.016)
	assertVec3Near(t, mgl32.Vec3{1.6, 0, 0}, f.target.WorldPosition())

	// screen up drives the target forward
	f.ctrl.OnPointerMove(mgl32.Vec2{0.5, 0.45})
	f.ctrl.Tick(0.016)
	assertVec3Near(t, mgl32.Vec3{1.6, 0, -1}, f.target.WorldPosition())

	f.ctrl.OnPointerUp()
	require.Equal(t, DragReturning, f.ctrl.State())
	released := f.target.WorldPosition()

	ticks := 0
	for f.ctrl.State() == DragReturning && ticks < 1000 {
		f.ctrl.Tick(0.016)
		ticks++
	}
	assert.Equal(t, DragIdle, f.ctrl.State())
	assert.Less(t, ticks, 100)
	assert.LessOrEqual(t, f.dot.Center().Sub(f.plate.Center()).Len(), float32(0.001))
	assert.Equal(t, released, f.target.WorldPosition(), "returning never moves the target")
}

func TestTickWhileIdleKeepsTarget(t *testing.T) {
	f := newFixture()
	f.target.SetWorldPosition(mgl32.Vec3{3, 0, 4})

	for i := 0; i < 10; i++ {
		f.ctrl.Tick(0.016)
	}
	assert.Equal(t, mgl32.Vec3{3, 0, 4}, f.target.WorldPosition())
	assert.Equal(t, DragIdle, f.ctrl.State())
}

func TestPointerIgnoredWhenNotDragging(t *testing.T) {
	f := newFixture()

	f.ctrl.OnPointerMove(mgl32.Vec2{0.5, 0.5})
	f.ctrl.OnPointerUp()

	assert.Equal(t, DragIdle, f.ctrl.State())
	assertVec2Near(t, mgl32.Vec2{0, 0}, f.dot.Center())
	assert.Equal(t, 1, f.logs.FilterMessage("pointer move ignored").Len())
	assert.Equal(t, 1, f.logs.FilterMessage("pointer up ignored").Len())
}

func TestAdvanceTargetTravelLimit(t *testing.T) {
	f := newFixture(WithMaxTravelDistance(10))
	f.target.SetWorldPosition(mgl32.Vec3{9.9, 0, 0})

	err := f.ctrl.AdvanceTarget(mgl32.Vec3{1, 0, 0})

	require.ErrorIs(t, err, ErrTravelLimit)
	assert.Equal(t, mgl32.Vec3{9.9, 0, 0}, f.target.WorldPosition())
	entries := f.logs.FilterMessage("reach maximum navigation travel distance").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	// moving back inside is allowed
	require.NoError(t, f.ctrl.AdvanceTarget(mgl32.Vec3{-1, 0, 0}))
	assertVec3Near(t, mgl32.Vec3{8.9, 0, 0}, f.target.WorldPosition())
}

func TestTravelLimitHolds(t *testing.T) {
	f := newFixture(WithMaxTravelDistance(5), WithMoveSpeed(0.7))
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		dir := mgl32.Vec3{rng.Float32()*2 - 1, 0, rng.Float32()*2 - 1}
		_ = f.ctrl.AdvanceTarget(dir)
		dist := f.target.WorldPosition().Sub(f.ctrl.Origin()).Len()
		require.LessOrEqual(t, dist, float32(5), "step %d", i)
	}
}

func TestNonPositiveTravelLimitIsUnlimited(t *testing.T) {
	for _, limit := range []float32{0, -5} {
		f := newFixture(WithMaxTravelDistance(limit))
		for i := 0; i < 20; i++ {
			require.NoError(t, f.ctrl.AdvanceTarget(mgl32.Vec3{1, 0, 0}), "limit %v", limit)
		}
		assertVec3Near(t, mgl32.Vec3{20, 0, 0}, f.target.WorldPosition())
		assert.Zero(t, f.logs.FilterMessage("reach maximum navigation travel distance").Len())
	}
}

func TestTravelLimitCentersOnStart(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)
	target := game_object.NewGameObject(game_object.WithPosition(mgl32.Vec3{100, 0, 0}))
	ctrl := NewJoystickController(
		WithLogger(zap.New(core)),
		WithUICamera(newStubCamera()),
		WithSceneCamera(newStubCamera()),
		WithTarget(target),
		WithControlPlate(ui.NewScreenTransform()),
		WithControlDot(ui.NewScreenTransform()),
		WithMaxTravelDistance(3),
	)

	assert.Equal(t, mgl32.Vec3{100, 0, 0}, ctrl.Origin())
	require.NoError(t, ctrl.AdvanceTarget(mgl32.Vec3{2, 0, 0}))
	assert.ErrorIs(t, ctrl.AdvanceTarget(mgl32.Vec3{2, 0, 0}), ErrTravelLimit)
}

func TestAdvanceTargetFollowsCameraYaw(t *testing.T) {
	tests := []struct {
		name      string
		forward   mgl32.Vec3
		rotation  mgl32.Quat
		direction mgl32.Vec3
		want      mgl32.Vec3
	}{
		{"camera facing -Z", mgl32.Vec3{0, 0, -1}, mgl32.QuatIdent(), mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, -2}},
		{"pitched camera facing +X", mgl32.Vec3{1, -1, 0}, mgl32.QuatIdent(), mgl32.Vec3{0, 0, -1}, mgl32.Vec3{2, 0, 0}},
		{"right of a camera facing +X", mgl32.Vec3{1, -1, 0}, mgl32.QuatIdent(), mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 2}},
		{"camera looking straight down", mgl32.Vec3{0, -1, 0}, mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{1, 0, 0}), mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(WithMoveSpeed(2))
			f.scene.forward = tt.forward
			f.scene.rotation = tt.rotation

			require.NoError(t, f.ctrl.AdvanceTarget(tt.direction))
			assertVec3Near(t, tt.want, f.target.WorldPosition())
		})
	}
}

func TestApplyRotation(t *testing.T) {
	t.Run("enabled faces the motion", func(t *testing.T) {
		f := newFixture(WithApplyRotation(true))
		f.scene.forward = mgl32.Vec3{1, 0, 0}

		require.NoError(t, f.ctrl.AdvanceTarget(mgl32.Vec3{0, 0, -1}))
		assertVec3Near(t, mgl32.Vec3{1, 0, 0}, f.target.WorldRotation().Rotate(common.WorldForward))
	})

	t.Run("disabled leaves rotation", func(t *testing.T) {
		f := newFixture()
		f.scene.forward = mgl32.Vec3{1, 0, 0}

		require.NoError(t, f.ctrl.AdvanceTarget(mgl32.Vec3{0, 0, -1}))
		assert.Equal(t, mgl32.QuatIdent(), f.target.WorldRotation())
	})
}

func TestDistanceMarker(t *testing.T) {
	f := newFixture(WithShowDebugView(true))
	f.scene.position = mgl32.Vec3{0, 50, 0}
	f.scene.screen = mgl32.Vec2{0.2, -0.4}
	f.target.SetWorldPosition(mgl32.Vec3{300, -20, 400})

	f.ctrl.Tick(0.016)

	assert.Equal(t, "5.00", f.label.Text())
	assertVec2Near(t, mgl32.Vec2{0.2, -0.4}, f.marker.Center())
	assert.True(t, f.marker.Enabled())
	assert.True(t, f.label.Enabled())

	rotations := []struct {
		name     string
		rotation mgl32.Quat
		visible  bool
	}{
		{"upside down", mgl32.QuatRotate(math.Pi, mgl32.Vec3{0, 0, 1}), false},
		{"yawed and upside down", mgl32.QuatRotate(math.Pi/2, common.WorldUp).Mul(mgl32.QuatRotate(math.Pi, mgl32.Vec3{0, 0, 1})), false},
		{"turned around", mgl32.QuatRotate(math.Pi, common.WorldUp), true},
		{"quarter turn", mgl32.QuatRotate(math.Pi/2, common.WorldUp), true},
		{"slight roll", mgl32.QuatRotate(0.3, mgl32.Vec3{0, 0, 1}), true},
	}
	for _, tt := range rotations {
		t.Run(tt.name, func(t *testing.T) {
			f.scene.rotation = tt.rotation
			f.ctrl.Tick(0.016)
			assert.Equal(t, tt.visible, f.marker.Enabled())
			assert.Equal(t, tt.visible, f.label.Enabled())
		})
	}

	t.Run("hidden without debug view", func(t *testing.T) {
		f.scene.rotation = mgl32.QuatIdent()
		f.ctrl.SetShowDebugView(false)
		f.ctrl.Tick(0.016)
		assert.False(t, f.marker.Enabled())
		assert.Equal(t, "5.00", f.label.Text(), "the label keeps updating while hidden")
	})
}

func TestDistanceMarkerVisibleAroundOrbit(t *testing.T) {
	ctrl := camera.NewCameraController(camera.WithRadius(600), camera.WithElevation(0.4))
	cam := camera.NewCamera(camera.WithController(ctrl))
	f := newFixture(WithShowDebugView(true), WithSceneCamera(cam))

	for _, azimuth := range []float32{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		ctrl.SetAzimuth(azimuth)
		cam.Update()
		f.ctrl.Tick(0.016)
		assert.True(t, f.marker.Enabled(), "azimuth %v", azimuth)
	}
}

func TestDragStateString(t *testing.T) {
	assert.Equal(t, "idle", DragIdle.String())
	assert.Equal(t, "dragging", DragDragging.String())
	assert.Equal(t, "returning", DragReturning.String())
	assert.Equal(t, "unknown", DragState(9).String())
}
