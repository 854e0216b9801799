package engine

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-nav/engine/profiler"
	"github.com/Carmen-Shannon/oxy-nav/engine/window"
	"go.uber.org/zap"
)

// engine implements the Engine interface.
// Coordinates the tick goroutine and the window message loop.
type engine struct {
	logger *zap.Logger

	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	resizeCallback func(width, height int)

	queueMu sync.Mutex
	queue   []func()
}

// Engine runs a fixed-rate tick loop. Input arriving from other goroutines is handed to the loop
// with Post, so the tick callback and every posted event run on the same goroutine, in order.
type Engine interface {
	// Window returns the underlying window, or nil for a headless engine.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables periodic tick-rate and memory stats in the log.
	EnableProfiler()

	// DisableProfiler disables profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	// If the engine is running, the change takes effect immediately.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each engine tick, after queued events have run.
	// It must be set before Run.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetResizeCallback registers a function called on the tick goroutine when the window is resized.
	// It must be set before Run.
	//
	// Parameters:
	//   - callback: function receiving the new framebuffer size
	SetResizeCallback(callback func(width, height int))

	// Post queues an event to run on the tick goroutine before the next tick callback.
	// Events run in the order they were posted. Safe for concurrent use.
	//
	// Parameters:
	//   - event: the function to run
	Post(event func())

	// Run starts the tick loop and blocks until the window closes or Quit is called.
	// With a window it must be called from the thread that created the window.
	Run()

	// Quit signals the engine to stop. Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration (window, profiling, tick rate, logger)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		logger:          zap.NewNop(),
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}
	e.logger = e.logger.Named("engine")
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if e.resizeCallback == nil || width <= 0 || height <= 0 {
				return
			}
			e.Post(func() { e.resizeCallback(width, height) })
		})
		e.window.SetUpdateCallback(func() {
			select {
			case <-e.quitChannel:
				e.window.RequestClose()
			default:
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	if !e.running.CompareAndSwap(false, true) {
		e.logger.Warn("engine already running")
		return
	}
	e.logger.Info("engine started", zap.Duration("tick", e.engineTickRate))

	e.wg.Add(1)
	go e.handleEngine()

	if e.window != nil {
		// the message loop owns the OS thread until the window closes
		e.window.ProcessMessages()
		e.signalQuit()
		if err := e.window.Close(); err != nil {
			e.logger.Warn("close window", zap.Error(err))
		}
	}

	<-e.quitChannel
	e.wg.Wait()
	e.running.Store(false)
	e.logger.Info("engine stopped")
}

// Quit signals all engine goroutines to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

func (e *engine) Post(event func()) {
	if event == nil {
		return
	}
	e.queueMu.Lock()
	e.queue = append(e.queue, event)
	e.queueMu.Unlock()
}

// drain runs every queued event in FIFO order. Events posted while draining run on the next tick.
func (e *engine) drain() {
	e.queueMu.Lock()
	events := e.queue
	e.queue = nil
	e.queueMu.Unlock()

	for _, event := range events {
		event()
	}
}

// handleEngine runs the fixed-rate engine tick loop in its own goroutine.
// Each tick drains posted events, then fires the tick callback. Listens for dynamic rate changes
// via tickRateChannel and exits when the quit channel is closed.
// A panic in a callback stops the engine instead of crashing the process.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("tick goroutine recovered from panic", zap.String("panic", fmt.Sprint(r)))
			e.signalQuit()
		}
	}()

	ticker := time.NewTicker(e.engineTickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			e.drain()
			if e.tickCallback != nil {
				e.tickCallback(dt)
			}

			if e.profilingEnabled.Load() {
				e.profiler.Tick()
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.engineTickRate = newRate
			e.logger.Debug("tick rate changed", zap.Duration("tick", newRate))
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
func (e *engine) SetTickRate(fps float64) {
	newRate := tickInterval(fps)

	if !e.running.Load() {
		e.engineTickRate = newRate
		return
	}

	// replace any pending update so the latest rate wins
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.resizeCallback = callback
}

// tickInterval converts a rate in ticks per second to a ticker period, defaulting to 60Hz.
func tickInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}
