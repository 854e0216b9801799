package main

import (
	"math"

	"github.com/Carmen-Shannon/oxy-nav/common"
	"github.com/Carmen-Shannon/oxy-nav/engine/arm"
	"github.com/Carmen-Shannon/oxy-nav/engine/camera"
	"github.com/Carmen-Shannon/oxy-nav/engine/config"
	"github.com/Carmen-Shannon/oxy-nav/engine/game_object"
	"github.com/Carmen-Shannon/oxy-nav/engine/navigation"
	"github.com/Carmen-Shannon/oxy-nav/engine/scene"
	"github.com/Carmen-Shannon/oxy-nav/engine/ui"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

const (
	// uiOrthoSize makes one centered screen unit span 10 UI world units vertically.
	uiOrthoSize = 10

	// tapRadius is how close, in normalized screen units, a click must land to the box to tap it.
	tapRadius = 0.05

	// followRate is the fraction of the gap to the target the camera pivot closes per second.
	followRate = 2

	hudInterval = 1.0

	boxName = "box"
)

// cameraFollow eases the scene camera pivot toward the dragged target.
type cameraFollow struct {
	ctrl    camera.CameraController
	target  game_object.GameObject
	enabled bool
}

func (f *cameraFollow) Tick(deltaTime float32) {
	if f.enabled {
		f.ctrl.Follow(f.target.WorldPosition(), followRate*deltaTime)
	}
}

// demo owns the navigation scene and routes input into it. All methods run on the engine tick goroutine.
type demo struct {
	logger *zap.Logger

	scene  scene.Scene
	target game_object.GameObject
	boxID  uint64

	plate  ui.ScreenTransform
	dot    ui.ScreenTransform
	marker ui.ScreenTransform
	label  *ui.Text

	nav  navigation.JoystickController
	arm  arm.Arm
	tap  arm.TapTrigger
	keys map[uint32]bool

	follow     *cameraFollow
	debugView  bool
	orbiting   bool
	lastX      int32
	lastY      int32
	hudElapsed float32
}

// newDemo builds the scene: an orbiting scene camera, an orthographic UI camera with the joystick,
// the dragged target and the arm above a box.
func newDemo(cfg *config.Config, logger *zap.Logger, aspect float32) *demo {
	sceneCam := camera.NewCamera(
		camera.WithFov(float32(45.0*math.Pi/180.0)),
		camera.WithAspect(aspect),
		camera.WithNear(1),
		camera.WithFar(10000),
		camera.WithController(camera.NewCameraController(
			camera.WithRadius(600),
			camera.WithElevation(0.4),
			camera.WithRadiusBounds(50, 5000),
			camera.WithPanSpeed(5),
			camera.WithZoomSpeed(25),
		)),
	)
	uiCam := camera.NewCamera(
		camera.WithProjection(camera.ProjectionOrthographic),
		camera.WithOrthoSize(uiOrthoSize),
		camera.WithAspect(aspect),
	)

	d := &demo{
		logger:    logger,
		target:    game_object.NewGameObject(game_object.WithName("target")),
		label:     ui.NewText("0.00"),
		keys:      make(map[uint32]bool),
		debugView: cfg.Navigation.ShowDebugView,
	}

	// plate and dot are screen-square; the radius covers half the plate height
	plateHeight := cfg.Navigation.ControlRadius / uiOrthoSize * 2
	plateSize := mgl32.Vec2{plateHeight / aspect, plateHeight}
	plateCenter := mgl32.Vec2{-0.7, -0.6}
	d.plate = ui.NewScreenTransform(ui.WithName("control plate"), ui.WithAnchors(ui.RectFromCenter(plateCenter, plateSize)))
	d.dot = ui.NewScreenTransform(ui.WithName("control dot"), ui.WithAnchors(ui.RectFromCenter(plateCenter, plateSize.Mul(0.25))))
	d.marker = ui.NewScreenTransform(ui.WithName("distance marker"), ui.WithAnchors(ui.RectFromCenter(mgl32.Vec2{}, mgl32.Vec2{0.05 / aspect, 0.05})))

	armObj := game_object.NewGameObject(
		game_object.WithName("arm"),
		game_object.WithPosition(mgl32.Vec3{150, cfg.Arm.StartHeight, 0}),
	)

	navOptions := []navigation.JoystickControllerBuilderOption{
		navigation.WithLogger(logger),
		navigation.WithUICamera(uiCam),
		navigation.WithSceneCamera(sceneCam),
		navigation.WithTarget(d.target),
		navigation.WithControlPlate(d.plate),
		navigation.WithControlDot(d.dot),
		navigation.WithDistanceMarker(d.marker, d.label),
		navigation.WithMoveSpeed(cfg.Navigation.MoveSpeed),
		navigation.WithControlRadius(cfg.Navigation.ControlRadius),
		navigation.WithApplyRotation(cfg.Navigation.ApplyRotation),
		navigation.WithShowDebugView(cfg.Navigation.ShowDebugView),
	}
	if cfg.Navigation.MaxTravelDistance > 0 {
		navOptions = append(navOptions, navigation.WithMaxTravelDistance(cfg.Navigation.MaxTravelDistance))
	}
	d.nav = navigation.NewJoystickController(navOptions...)

	d.arm = arm.NewArm(armObj,
		arm.WithLogger(logger),
		arm.WithLowerHeight(*cfg.Arm.LowerHeight),
		arm.WithMoveSpeed(cfg.Arm.MoveSpeed),
		arm.WithTolerance(cfg.Arm.Tolerance),
		arm.WithOnCatch(func() {
			if box := d.scene.Find(boxName); box != nil {
				logger.Info("caught", zap.Float32("box_distance", common.HorizontalDistance(armObj.WorldPosition(), box.WorldPosition())))
			}
		}),
		arm.WithOnPhaseChange(func(from, to arm.Phase) {
			logger.Debug("arm phase", zap.Stringer("from", from), zap.Stringer("to", to))
		}),
	)
	d.tap = arm.NewTapTrigger(d.arm, arm.WithTapLogger(logger))

	d.scene = scene.NewScene("navigation", sceneCam, uiCam,
		scene.WithLogger(logger),
		scene.WithObjects(d.target, armObj),
		scene.WithBehaviours(d.nav, d.arm),
	)
	d.boxID = d.scene.Add(game_object.NewGameObject(game_object.WithName(boxName), game_object.WithPosition(mgl32.Vec3{150, 0, 0})))

	// follows after the joystick so the pivot chases this tick's target position
	d.follow = &cameraFollow{ctrl: sceneCam.Controller(), target: d.target, enabled: true}
	d.scene.AddBehaviour(d.follow)
	return d
}

func (d *demo) pointerDown(pos mgl32.Vec2) {
	if d.plate.ContainsScreenPoint(pos) {
		d.nav.OnPointerDown(pos)
		return
	}
	box := d.scene.Get(d.boxID)
	if box == nil {
		return
	}
	cam := d.scene.Camera()
	boxPos := box.WorldPosition()
	if !common.FrustumFromMatrix(cam.ViewProjectionMatrix()).ContainsPoint(boxPos) {
		return
	}
	if common.ToNormalizedSpace(cam.WorldToScreen(boxPos)).Sub(pos).Len() <= tapRadius {
		d.tap.OnTap()
	}
}

func (d *demo) pointerMove(pos mgl32.Vec2) {
	d.nav.OnPointerMove(pos)
}

func (d *demo) pointerUp() {
	d.nav.OnPointerUp()
}

func (d *demo) keyDown(code uint32) {
	if d.keys[code] {
		return
	}
	d.keys[code] = true

	switch code {
	case common.KeySpace:
		d.tap.OnTap()
	case common.KeyC:
		d.arm.Cancel()
	case common.KeyV:
		d.debugView = !d.debugView
		d.nav.SetShowDebugView(d.debugView)
		d.logger.Info("debug view", zap.Bool("enabled", d.debugView))
	case common.KeyF:
		d.follow.enabled = !d.follow.enabled
		d.logger.Info("camera follow", zap.Bool("enabled", d.follow.enabled))
	case common.KeyP:
		d.scene.SetActive(!d.scene.Active())
		d.logger.Info("scene paused", zap.Bool("paused", !d.scene.Active()))
	}
}

func (d *demo) keyUp(code uint32) {
	d.keys[code] = false
}

func (d *demo) orbitStart(x, y int32) {
	d.orbiting = true
	d.lastX, d.lastY = x, y
}

func (d *demo) orbitEnd() {
	d.orbiting = false
}

func (d *demo) orbitMove(x, y int32) {
	if !d.orbiting {
		return
	}
	d.scene.Camera().Controller().Orbit(float32(x-d.lastX), float32(y-d.lastY))
	d.lastX, d.lastY = x, y
}

func (d *demo) zoom(delta float32) {
	d.scene.Camera().Controller().Zoom(delta)
}

// tick moves the camera from held keys, ticks the scene and periodically logs a status line.
func (d *demo) tick(deltaTime float32) {
	ctrl := d.scene.Camera().Controller()
	if d.keys[common.KeyW] {
		ctrl.PanForward(1)
	}
	if d.keys[common.KeyS] {
		ctrl.PanForward(-1)
	}
	if d.keys[common.KeyA] {
		ctrl.PanRight(-1)
	}
	if d.keys[common.KeyD] {
		ctrl.PanRight(1)
	}
	if d.keys[common.KeyQ] {
		ctrl.PanUp(1)
	}
	if d.keys[common.KeyE] {
		ctrl.PanUp(-1)
	}

	d.scene.Tick(deltaTime)

	d.hudElapsed += deltaTime
	if d.hudElapsed >= hudInterval {
		d.hudElapsed = 0
		pos := d.target.WorldPosition()
		d.logger.Info("status",
			zap.Stringer("drag", d.nav.State()),
			zap.Float32s("target", pos[:]),
			zap.String("distance_m", d.label.Text()),
			zap.Bool("marker_visible", d.marker.Enabled()),
			zap.Stringer("arm", d.arm.Phase()),
			zap.Int("objects", d.scene.Count()),
			zap.Bool("paused", !d.scene.Active()),
		)
	}
}

func (d *demo) resize(width, height int) {
	d.scene.Resize(width, height)
}
