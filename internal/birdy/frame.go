package birdy

import (
	"github.com/vovakirdan/birdy/internal/core"
	"github.com/vovakirdan/birdy/internal/sprite"
)

// EntityKind distinguishes entities in a Frame.
type EntityKind int

const (
	KindFlyer EntityKind = iota
	KindObstacle
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindFlyer:
		return "flyer"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// MarshalYAML encodes the kind by name.
func (k EntityKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Entity is the render-facing view of one simulated object.
// Rotation is in degrees. Obstacles carry their Direction so the renderer
// can mirror them; the core never flips Scale itself.
type Entity struct {
	Kind      EntityKind    `yaml:"kind"`
	Position  core.Vec2     `yaml:"position,flow"`
	Rotation  float64       `yaml:"rotation"`
	Scale     [3]float64    `yaml:"scale,flow"`
	Direction Direction     `yaml:"direction,omitempty"`
	Image     sprite.Handle `yaml:"image"`
}

// Frame is a snapshot of the world taken after a completed step.
// It shares nothing with the world, so renderers cannot mutate state.
type Frame struct {
	Step      int           `yaml:"step"`
	Viewport  core.Viewport `yaml:"viewport,flow"`
	Flyer     Entity        `yaml:"flyer"`
	Obstacles []Entity      `yaml:"obstacles"`
}

// Snapshot captures the current state for rendering.
func (w *World) Snapshot() Frame {
	s := w.cfg.Scale
	flyerScale := s * w.cfg.Flyer.SpriteScale

	f := Frame{
		Step:     w.stats.Steps,
		Viewport: w.viewport,
		Flyer: Entity{
			Kind:     KindFlyer,
			Position: w.flyer.Position(),
			Rotation: w.flyer.Rotation(),
			Scale:    [3]float64{flyerScale, flyerScale, flyerScale},
			Image:    w.flyerImage,
		},
		Obstacles: make([]Entity, 0, w.field.Len()),
	}

	for _, o := range w.field.Obstacles() {
		f.Obstacles = append(f.Obstacles, Entity{
			Kind:      KindObstacle,
			Position:  o.Position,
			Scale:     [3]float64{s, s, s},
			Direction: o.Direction,
			Image:     o.Image,
		})
	}
	return f
}
