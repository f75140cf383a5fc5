// Package birdy implements the simulation core of a side-scrolling
// obstacle-avoidance game: a flyer under gravity and flap impulses crossing
// a scrolling field of obstacle pairs.
//
// A World is stepped by a single owner. Each step runs, in order:
// the flyer update, the collision check with any reset and respawn, and
// finally the field's scroll and recycle pass.
package birdy

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdy/internal/config"
	"github.com/vovakirdan/birdy/internal/core"
	"github.com/vovakirdan/birdy/internal/sprite"
)

var (
	// ErrInvalidViewport is returned when the viewport has no usable size.
	ErrInvalidViewport = errors.New("birdy: invalid viewport")
	// ErrInvalidImage is returned when the obstacle image handle is not valid.
	ErrInvalidImage = errors.New("birdy: invalid obstacle image")
	// ErrNoOffsetSource is returned when no offset source is supplied.
	ErrNoOffsetSource = errors.New("birdy: missing offset source")
)

// Verdict is the outcome of a collision check.
type Verdict int

const (
	Alive Verdict = iota
	Dead
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Cause explains a Dead verdict.
type Cause int

const (
	CauseNone     Cause = iota
	CauseFell           // Left the viewport through the bottom edge
	CauseObstacle       // Overlapped an obstacle
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseFell:
		return "fell"
	case CauseObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// StepResult reports what happened during one step.
// Dead means the flyer died and was reset within the step; the world is
// always alive again when Step returns.
type StepResult struct {
	Verdict  Verdict
	Cause    Cause
	Recycled int
}

// Stats are running counters for diagnostics.
type Stats struct {
	Steps    int `yaml:"steps"`
	Deaths   int `yaml:"deaths"`
	Recycled int `yaml:"recycled"`
}

// World is the collision and lifecycle coordinator. It owns the flyer, the
// obstacle field and the viewport.
type World struct {
	cfg        config.BirdyConfig
	viewport   core.Viewport
	flyer      *Flyer
	field      *Field
	flyerImage sprite.Handle
	logger     *log.Logger
	stats      Stats
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithFlyerImage sets the sprite reported for the flyer in frames.
func WithFlyerImage(h sprite.Handle) Option {
	return func(w *World) {
		w.flyerImage = h
	}
}

// New validates its inputs, places the flyer at its origin and spawns the
// first field. Any error means the simulation must not start.
func New(cfg config.BirdyConfig, viewport core.Viewport, pipeImage sprite.Handle, offsets OffsetSource, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("birdy: %w", err)
	}
	if err := viewport.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidViewport, err)
	}
	if !pipeImage.Valid() {
		return nil, ErrInvalidImage
	}
	if offsets == nil {
		return nil, ErrNoOffsetSource
	}

	w := &World{
		cfg:      cfg,
		viewport: viewport,
		flyer:    NewFlyer(cfg.Origin(), cfg.Physics),
		field:    NewField(cfg, NewOffsetGenerator(offsets, cfg.Obstacles.VerticalOffset, cfg.Scale), pipeImage),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.field.Spawn(viewport.Width)
	w.logger.Debug("field spawned", "pairs", cfg.Pairs(), "width", viewport.Width, "height", viewport.Height)
	return w, nil
}

// Step advances the simulation by dt seconds. flap must be true only on
// the step the flap input first became active. Negative or NaN dt counts as zero.
func (w *World) Step(dt float64, flap bool) StepResult {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}
	w.stats.Steps++

	w.flyer.Step(dt, flap)

	result := StepResult{Verdict: Alive}
	if verdict, cause := w.Evaluate(); verdict == Dead {
		result.Verdict = Dead
		result.Cause = cause
		w.logger.Debug("flyer died", "step", w.stats.Steps, "cause", cause, "y", w.flyer.Position().Y)
		w.HandleDeath()
	}

	result.Recycled = w.field.Scroll(dt, w.viewport.Width)
	w.stats.Recycled += result.Recycled
	return result
}

// Evaluate checks the flyer against the bottom edge of the viewport and
// then against every obstacle. It does not mutate the world.
func (w *World) Evaluate() (Verdict, Cause) {
	pos := w.flyer.Position()
	if FellOut(pos, w.viewport) {
		return Dead, CauseFell
	}

	width, height := w.cfg.ObstacleSize()
	for _, o := range w.field.Obstacles() {
		if Collides(pos, o, width, height) {
			return Dead, CauseObstacle
		}
	}
	return Alive, CauseNone
}

// HandleDeath resets the flyer and replaces the whole field with a fresh
// one anchored to the current viewport width.
func (w *World) HandleDeath() {
	w.stats.Deaths++
	w.flyer.Reset()
	w.field.Spawn(w.viewport.Width)
	w.logger.Debug("field respawned", "generation", w.field.Generation(), "deaths", w.stats.Deaths)
}

// SetViewport changes the visible field size, e.g. after a window resize.
// The current field is kept; the new width applies from the next recycle or respawn.
func (w *World) SetViewport(v core.Viewport) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidViewport, err)
	}
	w.viewport = v
	return nil
}

// FellOut reports whether pos is at or below the viewport's bottom edge.
// There is no upper bound.
func FellOut(pos core.Vec2, v core.Viewport) bool {
	return pos.Y <= -v.HalfHeight()
}

// Collides reports whether pos lies strictly inside the obstacle's box.
// The box ignores the obstacle's direction.
func Collides(pos core.Vec2, o Obstacle, width, height float64) bool {
	return core.NewBox(o.Position, width, height).ContainsStrict(pos)
}

// Flyer returns the flyer. Callers outside the step owner must only read it.
func (w *World) Flyer() *Flyer {
	return w.flyer
}

// Obstacles returns a copy of the live obstacles.
func (w *World) Obstacles() []Obstacle {
	out := make([]Obstacle, w.field.Len())
	copy(out, w.field.Obstacles())
	return out
}

// Viewport returns the current viewport.
func (w *World) Viewport() core.Viewport {
	return w.viewport
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.BirdyConfig {
	return w.cfg
}

// Stats returns the running counters.
func (w *World) Stats() Stats {
	return w.stats
}
