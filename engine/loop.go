// Package engine drives the simulation at a fixed frame interval
package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/fireworks/parameter"
)

// ErrInvalidInterval is returned by Run when the loop was built with a non-positive interval
var ErrInvalidInterval = errors.New("frame interval must be positive")

// Loop calls step then frame once per interval on a single goroutine
// step is skipped while paused; frame always runs so a paused scene keeps redrawing
// Other goroutines interact with loop-owned state only through Post
type Loop struct {
	interval time.Duration
	step     func()
	frame    func()

	commands chan func()
	paused   atomic.Bool
	stepOnce atomic.Bool
	ticks    atomic.Uint64

	clock *Clock
	log   *slog.Logger
}

// LoopOption configures a Loop
type LoopOption func(*Loop)

func WithLogger(l *slog.Logger) LoopOption {
	return func(lp *Loop) {
		if l != nil {
			lp.log = l
		}
	}
}

// WithQueueSize sets the posted-command buffer capacity
func WithQueueSize(n int) LoopOption {
	return func(lp *Loop) {
		if n > 0 {
			lp.commands = make(chan func(), n)
		}
	}
}

// WithClock replaces the simulation clock, used to drive Elapsed from a fake time source
func WithClock(c *Clock) LoopOption {
	return func(lp *Loop) {
		if c != nil {
			lp.clock = c
		}
	}
}

// NewLoop creates a loop; nil step or frame callbacks are treated as no-ops
func NewLoop(interval time.Duration, step, frame func(), opts ...LoopOption) *Loop {
	if step == nil {
		step = func() {}
	}
	if frame == nil {
		frame = func() {}
	}
	l := &Loop{
		interval: interval,
		step:     step,
		frame:    frame,
		commands: make(chan func(), parameter.CommandQueueSize),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.clock == nil {
		l.clock = NewClock(nil)
	}
	return l
}

// IntervalForFPS converts a frame rate to a tick interval, clamped to the supported range
func IntervalForFPS(fps int) time.Duration {
	fps = max(parameter.MinFPS, min(parameter.MaxFPS, fps))
	return time.Second / time.Duration(fps)
}

// Run ticks until ctx is cancelled
// Cancellation is a clean stop and returns nil
func (l *Loop) Run(ctx context.Context) error {
	if l.interval <= 0 {
		return ErrInvalidInterval
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.log.Debug("loop started", "interval", l.interval)
	defer func() {
		l.log.Debug("loop stopped", "ticks", l.ticks.Load(), "elapsed", l.clock.Elapsed())
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Advance()
		}
	}
}

// Advance runs one iteration synchronously: pending commands, step, frame
// Exposed for headless drivers and tests; must not race with Run
func (l *Loop) Advance() {
	l.drain()

	if !l.paused.Load() || l.stepOnce.Swap(false) {
		l.step()
		l.ticks.Add(1)
	}

	l.frame()
}

// drain executes every queued command without blocking
func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.commands:
			fn()
		default:
			return
		}
	}
}

// Post queues fn to run on the loop goroutine before the next step
// Returns false when the queue is full and fn was dropped
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return true
	}
	select {
	case l.commands <- fn:
		return true
	default:
		l.log.Debug("command dropped, queue full")
		return false
	}
}

func (l *Loop) Pause() {
	if l.paused.CompareAndSwap(false, true) {
		l.clock.Pause()
	}
}

func (l *Loop) Resume() {
	if l.paused.CompareAndSwap(true, false) {
		l.stepOnce.Store(false)
		l.clock.Resume()
	}
}

// Toggle flips the pause state and returns the new value
func (l *Loop) Toggle() bool {
	if l.paused.Load() {
		l.Resume()
		return false
	}
	l.Pause()
	return true
}

func (l *Loop) IsPaused() bool {
	return l.paused.Load()
}

// Step requests a single step on the next iteration while paused
// Ignored when running
func (l *Loop) Step() {
	if l.paused.Load() {
		l.stepOnce.Store(true)
	}
}

// Ticks returns how many steps have run
func (l *Loop) Ticks() uint64 {
	return l.ticks.Load()
}

// Elapsed returns simulation time excluding pauses
func (l *Loop) Elapsed() time.Duration {
	return l.clock.Elapsed()
}
