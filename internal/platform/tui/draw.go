package tui

import (
	"math"

	"github.com/vovakirdan/birdy/internal/birdy"
	"github.com/vovakirdan/birdy/internal/core"
	"github.com/vovakirdan/birdy/internal/sprite"
)

// Projection maps world coordinates onto a grid of terminal cells.
// Row 0 is the top of the viewport.
type Projection struct {
	Viewport core.Viewport
	Cols     int
	Rows     int
}

// Cell returns the column and row containing world point v.
// Points outside the viewport map outside [0, Cols) x [0, Rows).
func (p Projection) Cell(v core.Vec2) (col, row int) {
	col = int(math.Floor((v.X + p.Viewport.HalfWidth()) / p.Viewport.Width * float64(p.Cols)))
	row = int(math.Floor((p.Viewport.HalfHeight() - v.Y) / p.Viewport.Height * float64(p.Rows)))
	return col, row
}

// Span returns the half-open cell rectangle [x0, x1) x [y0, y1) covered by
// a box. A box inside the viewport always covers at least one cell.
func (p Projection) Span(b core.Box) (x0, y0, x1, y1 int) {
	x0, y0 = p.Cell(core.Vec2{X: b.Left(), Y: b.Top()})
	x1 = int(math.Ceil((b.Right() + p.Viewport.HalfWidth()) / p.Viewport.Width * float64(p.Cols)))
	y1 = int(math.Ceil((p.Viewport.HalfHeight() - b.Bottom()) / p.Viewport.Height * float64(p.Rows)))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// DrawFrame renders a simulation frame into the screen.
func DrawFrame(s *core.Screen, atlas *sprite.Atlas, f birdy.Frame) {
	s.Clear()
	if s.Width() == 0 || s.Height() == 0 || f.Viewport.Validate() != nil {
		return
	}
	p := Projection{Viewport: f.Viewport, Cols: s.Width(), Rows: s.Height()}

	for _, e := range f.Obstacles {
		drawObstacle(s, p, atlas, e)
	}
	drawFlyer(s, p, atlas, f.Flyer)
}

func drawObstacle(s *core.Screen, p Projection, atlas *sprite.Atlas, e birdy.Entity) {
	spr, ok := atlas.Get(e.Image)
	if !ok {
		return
	}
	box := core.NewBox(e.Position, spr.Width*e.Scale[0], spr.Height*e.Scale[1])
	x0, y0, x1, y1 := p.Span(box)
	s.FillRect(x0, y0, x1, y1, spr.Frame(0), spr.Color)

	if len(spr.Frames) < 2 {
		return
	}
	// The cap faces the gap. The sheet draws it for an upward-opening pipe,
	// so top obstacles get it mirrored on their bottom row.
	capRune := spr.Frame(1)
	capRow := y0
	if e.Direction == birdy.DirectionTop {
		capRune = mirrorVertical(capRune)
		capRow = y1 - 1
	}
	s.FillRect(x0, capRow, x1, capRow+1, capRune, spr.Color)
}

func drawFlyer(s *core.Screen, p Projection, atlas *sprite.Atlas, e birdy.Entity) {
	spr, ok := atlas.Get(e.Image)
	if !ok {
		return
	}
	col, row := p.Cell(e.Position)
	s.SetCell(col, row, spr.FrameForAngle(e.Rotation), spr.Color)
}

var verticalMirror = map[rune]rune{
	'▄': '▀',
	'▀': '▄',
	'▁': '▔',
	'▔': '▁',
	'╥': '╨',
	'╨': '╥',
	'┬': '┴',
	'┴': '┬',
}

func mirrorVertical(r rune) rune {
	if m, ok := verticalMirror[r]; ok {
		return m
	}
	return r
}
