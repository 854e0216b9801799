package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
)

// Window provides platform windowing and input event handling.
// Callbacks run on the thread that called ProcessMessages; hosts forward them to the engine
// with Engine.Post so behaviours only ever see them on the tick goroutine.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving scroll delta (positive = up/zoom in, negative = down/zoom out)
	SetScrollCallback(callback func(delta float32))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetPointerDownCallback sets the callback for left mouse button press.
	//
	// Parameters:
	//   - callback: function receiving the pointer in normalized screen space ([0,1], y down)
	SetPointerDownCallback(callback func(pos mgl32.Vec2))

	// SetPointerMoveCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the pointer in normalized screen space
	SetPointerMoveCallback(callback func(pos mgl32.Vec2))

	// SetPointerUpCallback sets the callback for left mouse button release.
	//
	// Parameters:
	//   - callback: function receiving the pointer in normalized screen space
	SetPointerUpCallback(callback func(pos mgl32.Vec2))

	// SetMiddleMouseDownCallback sets the callback for middle mouse button press.
	//
	// Parameters:
	//   - callback: function receiving mouse x, y position in window coordinates
	SetMiddleMouseDownCallback(callback func(x, y int32))

	// SetMiddleMouseUpCallback sets the callback for middle mouse button release.
	SetMiddleMouseUpCallback(callback func(x, y int32))

	// SetMouseMoveCallback sets the callback for raw mouse movement in window coordinates.
	SetMouseMoveCallback(callback func(x, y int32))

	// RequestClose asks the message loop to stop. It must be called from the message loop thread,
	// typically from the update callback.
	RequestClose()

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title string

	// size limits applied while resizing
	maxWidth, maxHeight int
	minWidth, minHeight int

	// framebuffer size in pixels
	width, height int

	// internalWindow holds the platform window (*glfwWindow).
	internalWindow any

	onUpdate func()
	onResize func(width, height int)
	// onScroll receives positive deltas for scroll up.
	onScroll  func(delta float32)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)

	// left button input, normalized to the window size
	onPointerDown func(pos mgl32.Vec2)
	onPointerMove func(pos mgl32.Vec2)
	onPointerUp   func(pos mgl32.Vec2)

	// middle button and raw cursor input in window coordinates
	onMiddleMouseDown func(x, y int32)
	onMiddleMouseUp   func(x, y int32)
	onMouseMove       func(x, y int32)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
//   - error: if GLFW fails to initialize or create the window
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "oxy-nav",
		maxWidth:  1600,
		maxHeight: 1200,
		minWidth:  600,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("create platform window: %w", err)
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(delta float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetMiddleMouseDownCallback(callback func(x, y int32)) {
	w.onMiddleMouseDown = callback
}

func (w *engineWindow) SetMiddleMouseUpCallback(callback func(x, y int32)) {
	w.onMiddleMouseUp = callback
}

func (w *engineWindow) SetMouseMoveCallback(callback func(x, y int32)) {
	w.onMouseMove = callback
}

func (w *engineWindow) SetPointerDownCallback(callback func(pos mgl32.Vec2)) {
	w.onPointerDown = callback
}

func (w *engineWindow) SetPointerMoveCallback(callback func(pos mgl32.Vec2)) {
	w.onPointerMove = callback
}

func (w *engineWindow) SetPointerUpCallback(callback func(pos mgl32.Vec2)) {
	w.onPointerUp = callback
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
