package birdy

import (
	"github.com/vovakirdan/birdy/internal/config"
	"github.com/vovakirdan/birdy/internal/core"
	"github.com/vovakirdan/birdy/internal/sprite"
)

// Direction tells which member of a pair an obstacle is.
// It doubles as the sign of the obstacle's distance from the pair offset.
type Direction int8

const (
	DirectionTop    Direction = 1
	DirectionBottom Direction = -1
)

// Sign returns +1 for top obstacles and -1 for bottom ones.
func (d Direction) Sign() float64 {
	return float64(d)
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionTop:
		return "top"
	case DirectionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Obstacle is one member of a pair. All obstacles share the same sprite
// through Image.
type Obstacle struct {
	Position  core.Vec2
	Direction Direction
	Image     sprite.Handle
}

// Field owns the obstacle pairs currently in play.
// Pair i occupies obstacles[2i] (top) and obstacles[2i+1] (bottom) right
// after a spawn; recycling keeps that layout.
type Field struct {
	obstacles  []Obstacle
	offsets    *OffsetGenerator
	cfg        config.BirdyConfig
	image      sprite.Handle
	generation int // Number of spawns so far
}

// NewField creates an empty field. Call Spawn to populate it.
func NewField(cfg config.BirdyConfig, offsets *OffsetGenerator, image sprite.Handle) *Field {
	return &Field{
		obstacles: make([]Obstacle, 0, 2*cfg.Pairs()),
		offsets:   offsets,
		cfg:       cfg,
		image:     image,
	}
}

// Spawn discards every obstacle and lays out a fresh field starting at the
// right edge of a viewport of the given width.
func (f *Field) Spawn(viewportWidth float64) {
	f.obstacles = f.obstacles[:0]
	f.generation++

	gap := f.cfg.CenteredGapPosition()
	spacing := f.cfg.ScaledSpacing()

	for i := 0; i < f.cfg.Pairs(); i++ {
		offset := f.offsets.Next()
		x := viewportWidth/2 + spacing*float64(i)

		f.obstacles = append(f.obstacles,
			Obstacle{Position: core.Vec2{X: x, Y: gap + offset}, Direction: DirectionTop, Image: f.image},
			Obstacle{Position: core.Vec2{X: x, Y: -gap + offset}, Direction: DirectionBottom, Image: f.image},
		)
	}
}

// Scroll moves every obstacle left by the scroll distance for dt and
// recycles the ones that left the viewport. Returns how many were recycled.
//
// All obstacles recycled in one call share a single freshly drawn offset.
// No offset is drawn on calls that recycle nothing.
func (f *Field) Scroll(dt, viewportWidth float64) int {
	dx := f.cfg.Obstacles.ScrollSpeed * dt
	w, _ := f.cfg.ObstacleSize()
	leftEdge := -viewportWidth / 2
	gap := f.cfg.CenteredGapPosition()
	length := f.cfg.FieldLength()

	recycled := 0
	var offset float64
	for i := range f.obstacles {
		o := &f.obstacles[i]
		o.Position.X -= dx

		if o.Position.X+w/2 >= leftEdge {
			continue
		}
		if recycled == 0 {
			offset = f.offsets.Next()
		}
		o.Position.X += length
		o.Position.Y = gap*o.Direction.Sign() + offset
		recycled++
	}
	return recycled
}

// Obstacles returns the live obstacles. The slice must not be modified.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Pair returns the two members of pair i in spawn order.
func (f *Field) Pair(i int) (top, bottom Obstacle) {
	return f.obstacles[2*i], f.obstacles[2*i+1]
}

// Len returns the number of obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// Generation returns how many times the field has been spawned.
func (f *Field) Generation() int {
	return f.generation
}
