package main

import (
	"github.com/Carmen-Shannon/oxy-nav/engine"
	"github.com/go-gl/mathgl/mgl32"
)

// bindInput forwards window input to the demo through the engine queue so the demo only runs on
// the tick goroutine.
func bindInput(eng engine.Engine, d *demo) {
	eng.SetTickCallback(d.tick)
	eng.SetResizeCallback(d.resize)

	win := eng.Window()
	if win == nil {
		return
	}

	win.SetPointerDownCallback(func(pos mgl32.Vec2) {
		eng.Post(func() { d.pointerDown(pos) })
	})
	win.SetPointerMoveCallback(func(pos mgl32.Vec2) {
		eng.Post(func() { d.pointerMove(pos) })
	})
	win.SetPointerUpCallback(func(mgl32.Vec2) {
		eng.Post(d.pointerUp)
	})

	win.SetMiddleMouseDownCallback(func(x, y int32) {
		eng.Post(func() { d.orbitStart(x, y) })
	})
	win.SetMiddleMouseUpCallback(func(x, y int32) {
		eng.Post(d.orbitEnd)
	})
	win.SetMouseMoveCallback(func(x, y int32) {
		eng.Post(func() { d.orbitMove(x, y) })
	})
	win.SetScrollCallback(func(delta float32) {
		eng.Post(func() { d.zoom(delta) })
	})

	// Escape is handled by the window itself and never reaches the demo
	win.SetKeyDownCallback(func(keyCode uint32) {
		eng.Post(func() { d.keyDown(keyCode) })
	})
	win.SetKeyUpCallback(func(keyCode uint32) {
		eng.Post(func() { d.keyUp(keyCode) })
	})
}
