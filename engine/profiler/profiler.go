package profiler

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Stats is one reporting interval of profiler output.
type Stats struct {
	// TickRate is the measured ticks per second over the interval.
	TickRate float64
	// HeapMB is live heap memory.
	HeapMB float64
	// AllocRateMB is heap allocation churn in MB per second.
	AllocRateMB float64
	// GCCount is the total number of completed GC cycles.
	GCCount uint32
	// LastPauseUs and MaxPauseUs are GC pause times in microseconds.
	LastPauseUs uint64
	MaxPauseUs  uint64
	// SysMB is memory obtained from the OS.
	SysMB float64
}

// ProfilerOption configures a Profiler.
type ProfilerOption func(*Profiler)

// WithLogger sets the logger stats are reported to.
func WithLogger(logger *zap.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithInterval sets how often stats are reported.
func WithInterval(interval time.Duration) ProfilerOption {
	return func(p *Profiler) {
		if interval > 0 {
			p.updateInterval = interval
		}
	}
}

// Profiler tracks tick rate and memory statistics, reporting them at a fixed interval.
type Profiler struct {
	logger         *zap.Logger
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
}

// NewProfiler creates a Profiler reporting once per second to a no-op logger unless configured otherwise.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		logger:         zap.NewNop(),
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
	for _, opt := range options {
		opt(p)
	}
	p.logger = p.logger.Named("profiler")
	return p
}

// Tick should be called once per engine tick. When the interval has elapsed it samples memory
// statistics and logs them at info level.
//
// Returns:
//   - bool: true if stats were reported this tick
func (p *Profiler) Tick() bool {
	p.tickCount++
	now := time.Now()
	elapsed := now.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	s := Stats{
		TickRate:    float64(p.tickCount) / elapsed.Seconds(),
		HeapMB:      float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB: float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds(),
		GCCount:     p.memStats.NumGC,
		SysMB:       float64(p.memStats.Sys) / 1024 / 1024,
	}

	if s.GCCount > 0 {
		// PauseNs is a ring of the last 256 pauses
		s.LastPauseUs = p.memStats.PauseNs[(s.GCCount-1)%256] / 1000
		start := p.lastGCCount
		if s.GCCount-start > 256 {
			start = s.GCCount - 256
		}
		for i := start; i < s.GCCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > s.MaxPauseUs {
				s.MaxPauseUs = pause
			}
		}
	}

	p.logger.Info("stats",
		zap.Float64("tick_rate", s.TickRate),
		zap.Float64("heap_mb", s.HeapMB),
		zap.Float64("alloc_rate_mb", s.AllocRateMB),
		zap.Uint32("gc", s.GCCount),
		zap.Uint64("gc_last_us", s.LastPauseUs),
		zap.Uint64("gc_max_us", s.MaxPauseUs),
		zap.Float64("sys_mb", s.SysMB),
	)

	p.last = s
	p.tickCount = 0
	p.lastTime = now
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recently reported stats.
func (p *Profiler) Last() Stats {
	return p.last
}
