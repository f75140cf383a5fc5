// Package sprite stores decoded sprite resources in an arena.
// Entities refer to a sprite through a Handle instead of holding their own copy.
package sprite

import (
	_ "embed"
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/birdy/internal/core"
)

//go:embed defaults/sprites.yaml
var defaultSheet []byte

// Names of the sprites the game expects in a sheet.
const (
	FlyerName = "flyer"
	PipeName  = "pipe"
)

var (
	// ErrUnknownSprite is returned when a name is not present in the atlas.
	ErrUnknownSprite = errors.New("sprite: unknown sprite")
	// ErrInvalidSheet is returned when a sheet cannot be decoded.
	ErrInvalidSheet = errors.New("sprite: invalid sheet")
)

// Handle addresses a sprite in an Atlas. The zero Handle is never valid.
type Handle uint32

// Valid reports whether h can refer to a sprite at all.
func (h Handle) Valid() bool {
	return h != 0
}

// Sprite is a decoded terminal image: a set of single-rune frames and a color.
// Width and Height are the source image size in pixels; entity scale turns
// them into world units.
type Sprite struct {
	Name   string
	Frames []rune
	Color  core.Color
	Width  float64
	Height float64
}

// Frame returns frame i, clamped to the available range.
func (s Sprite) Frame(i int) rune {
	if len(s.Frames) == 0 {
		return '?'
	}
	return s.Frames[core.Clamp(i, 0, len(s.Frames)-1)]
}

// FrameForAngle maps an angle in [-90, 90] degrees onto the frames,
// first frame at -90 and last at +90.
func (s Sprite) FrameForAngle(deg float64) rune {
	n := len(s.Frames)
	if n <= 1 {
		return s.Frame(0)
	}
	t := (core.ClampF(deg, -90, 90) + 90) / 180
	return s.Frame(int(t*float64(n-1) + 0.5))
}

// Atlas owns every decoded sprite. Handles stay valid for the atlas lifetime.
type Atlas struct {
	sprites []Sprite
	byName  map[string]Handle
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{byName: make(map[string]Handle)}
}

// Add stores a sprite and returns its handle. A sprite with an existing
// name replaces the lookup entry but the old handle keeps working.
func (a *Atlas) Add(s Sprite) Handle {
	a.sprites = append(a.sprites, s)
	h := Handle(len(a.sprites))
	a.byName[s.Name] = h
	return h
}

// Get returns the sprite behind h.
func (a *Atlas) Get(h Handle) (Sprite, bool) {
	if !h.Valid() || int(h) > len(a.sprites) {
		return Sprite{}, false
	}
	return a.sprites[h-1], true
}

// Lookup returns the handle registered under name.
func (a *Atlas) Lookup(name string) (Handle, error) {
	h, ok := a.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownSprite, name)
	}
	return h, nil
}

// Len returns the number of stored sprites.
func (a *Atlas) Len() int {
	return len(a.sprites)
}

type sheetFile struct {
	Sprites []sheetEntry `yaml:"sprites"`
}

type sheetEntry struct {
	Name   string   `yaml:"name"`
	Color  string   `yaml:"color"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Glyphs []string `yaml:"glyphs"`
}

// LoadSheet decodes a YAML sprite sheet into a new atlas.
func LoadSheet(data []byte) (*Atlas, error) {
	var sheet sheetFile
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSheet, err)
	}

	a := NewAtlas()
	for i, e := range sheet.Sprites {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: sprite #%d has no name", ErrInvalidSheet, i)
		}
		if e.Width < 0 || e.Height < 0 {
			return nil, fmt.Errorf("%w: sprite %q has negative size", ErrInvalidSheet, e.Name)
		}
		if len(e.Glyphs) == 0 {
			return nil, fmt.Errorf("%w: sprite %q has no glyphs", ErrInvalidSheet, e.Name)
		}

		color := core.ColorDefault
		if e.Color != "" {
			c, ok := core.ParseColor(e.Color)
			if !ok {
				return nil, fmt.Errorf("%w: sprite %q has unknown color %q", ErrInvalidSheet, e.Name, e.Color)
			}
			color = c
		}

		frames := make([]rune, 0, len(e.Glyphs))
		for _, g := range e.Glyphs {
			if utf8.RuneCountInString(g) != 1 {
				return nil, fmt.Errorf("%w: sprite %q glyph %q must be a single character", ErrInvalidSheet, e.Name, g)
			}
			r, _ := utf8.DecodeRuneInString(g)
			frames = append(frames, r)
		}

		a.Add(Sprite{Name: e.Name, Frames: frames, Color: color, Width: e.Width, Height: e.Height})
	}
	return a, nil
}

// LoadDefault decodes the embedded sprite sheet.
func LoadDefault() (*Atlas, error) {
	return LoadSheet(defaultSheet)
}
