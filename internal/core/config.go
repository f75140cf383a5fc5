package core

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrEmptyViewport is returned when a viewport has no visible area.
var ErrEmptyViewport = errors.New("core: viewport must have positive width and height")

// Viewport is the visible field size in world units.
// The field spans [-Width/2, Width/2] x [-Height/2, Height/2].
type Viewport struct {
	Width  float64
	Height float64
}

// Validate reports whether the viewport can host a simulation.
func (v Viewport) Validate() error {
	if !(v.Width > 0) || !(v.Height > 0) || math.IsInf(v.Width, 0) || math.IsInf(v.Height, 0) {
		return fmt.Errorf("%w (got %gx%g)", ErrEmptyViewport, v.Width, v.Height)
	}
	return nil
}

// HalfWidth returns the distance from the center to the left/right edge.
func (v Viewport) HalfWidth() float64 {
	return v.Width / 2
}

// HalfHeight returns the distance from the center to the top/bottom edge.
func (v Viewport) HalfHeight() float64 {
	return v.Height / 2
}

// RuntimeConfig contains configuration passed to frontends at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation steps per second (default 60)
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Clock supplies the elapsed time, in seconds, for each simulation step.
type Clock interface {
	Delta() float64
}

// FixedClock returns the same delta every step. Used for headless runs and tests.
type FixedClock struct {
	DT float64
}

// Delta returns the fixed step, never negative.
func (c FixedClock) Delta() float64 {
	if c.DT < 0 {
		return 0
	}
	return c.DT
}

// RealClock measures wall time between consecutive Delta calls.
// The first call returns 0. MaxDelta caps a single step after stalls
// (e.g. a suspended terminal); zero means no cap.
type RealClock struct {
	MaxDelta time.Duration
	now      func() time.Time
	last     time.Time
}

// NewRealClock creates a wall clock capped at maxDelta per step.
func NewRealClock(maxDelta time.Duration) *RealClock {
	return &RealClock{MaxDelta: maxDelta, now: time.Now}
}

// Delta returns seconds since the previous call.
func (c *RealClock) Delta() float64 {
	if c.now == nil {
		c.now = time.Now
	}
	return c.Observe(c.now())
}

// Observe returns seconds between t and the previously observed time.
// Frontends that receive timestamped ticks call this directly.
func (c *RealClock) Observe(t time.Time) float64 {
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		d = 0
	}
	if c.MaxDelta > 0 && d > c.MaxDelta {
		d = c.MaxDelta
	}
	return d.Seconds()
}
