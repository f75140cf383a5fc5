package birdy

import (
	"math/rand"

	"github.com/vovakirdan/birdy/internal/core"
)

// OffsetSource yields unscaled vertical offsets in [-limit, limit].
type OffsetSource interface {
	Offset(limit float64) float64
}

// RandSource draws uniform offsets from a seeded generator.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Offset returns a uniform value in [-limit, limit).
func (s *RandSource) Offset(limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return (s.rng.Float64()*2 - 1) * limit
}

// SequenceSource replays a fixed list of offsets, cycling when exhausted.
// Values outside [-limit, limit] are clamped.
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource creates a source that replays values in order.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

// Offset returns the next value of the sequence.
func (s *SequenceSource) Offset(limit float64) float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if limit < 0 {
		limit = 0
	}
	return core.ClampF(v, -limit, limit)
}

// Drawn returns how many offsets have been consumed.
func (s *SequenceSource) Drawn() int {
	return s.next
}

// OffsetGenerator turns source draws into scaled world offsets.
type OffsetGenerator struct {
	src   OffsetSource
	limit float64
	scale float64
}

// NewOffsetGenerator creates a generator bounded by ±limit before scaling.
func NewOffsetGenerator(src OffsetSource, limit, scale float64) *OffsetGenerator {
	return &OffsetGenerator{src: src, limit: limit, scale: scale}
}

// Next draws one offset in world units.
func (g *OffsetGenerator) Next() float64 {
	return g.src.Offset(g.limit) * g.scale
}
