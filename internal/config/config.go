// Package config provides YAML-based configuration for the birdy simulation.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/birdy/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// BirdyConfig contains all tunables of the simulation.
// Spatial values are unscaled; Scale is applied uniformly by the accessors.
type BirdyConfig struct {
	Scale     float64        `yaml:"scale"`
	Window    WindowConfig   `yaml:"window"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Flyer     FlyerConfig    `yaml:"flyer"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// WindowConfig is the visible field size before scaling.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the flyer's motion parameters.
type PhysicsConfig struct {
	FlapForce          float64 `yaml:"flap_force"`           // Upward velocity set by a flap
	Gravity            float64 `yaml:"gravity"`              // Downward acceleration, units/s^2
	VelocityToRotation float64 `yaml:"velocity_to_rotation"` // Velocity divisor giving degrees
}

// FlyerConfig defines where the flyer (re)starts and how big its sprite is drawn.
type FlyerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	SpriteScale float64 `yaml:"sprite_scale"`
}

// ObstacleConfig defines the obstacle field layout.
type ObstacleConfig struct {
	Amount         int     `yaml:"amount"` // Field holds Amount+1 pairs
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	VerticalOffset float64 `yaml:"vertical_offset"` // Max |random offset| of a pair
	GapSize        float64 `yaml:"gap_size"`
	Spacing        float64 `yaml:"spacing"`      // Horizontal distance between pairs
	ScrollSpeed    float64 `yaml:"scroll_speed"` // Units per second, not scaled
}

// Viewport returns the scaled window size.
func (c BirdyConfig) Viewport() core.Viewport {
	return core.Viewport{
		Width:  c.Window.Width * c.Scale,
		Height: c.Window.Height * c.Scale,
	}
}

// Origin returns the flyer's start position in world units.
func (c BirdyConfig) Origin() core.Vec2 {
	return core.Vec2{X: c.Flyer.StartX * c.Scale, Y: c.Flyer.StartY * c.Scale}
}

// Pairs returns how many obstacle pairs a fresh field holds.
func (c BirdyConfig) Pairs() int {
	return c.Obstacles.Amount + 1
}

// ScaledSpacing returns the horizontal distance between neighbouring pairs.
func (c BirdyConfig) ScaledSpacing() float64 {
	return c.Obstacles.Spacing * c.Scale
}

// FieldLength returns the distance a recycled obstacle jumps forward.
func (c BirdyConfig) FieldLength() float64 {
	return float64(c.Pairs()) * c.ScaledSpacing()
}

// CenteredGapPosition returns the distance from a pair's offset to each
// obstacle's center.
func (c BirdyConfig) CenteredGapPosition() float64 {
	return (c.Obstacles.Height/2 + c.Obstacles.GapSize) * c.Scale
}

// ObstacleSize returns the scaled obstacle width and height.
func (c BirdyConfig) ObstacleSize() (w, h float64) {
	return c.Obstacles.Width * c.Scale, c.Obstacles.Height * c.Scale
}

// Validate checks that the configuration can drive a simulation.
func (c BirdyConfig) Validate() error {
	switch {
	case !(c.Scale > 0):
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalid, c.Scale)
	case c.Physics.VelocityToRotation == 0:
		return fmt.Errorf("%w: velocity_to_rotation must be non-zero", ErrInvalid)
	case c.Physics.Gravity < 0:
		return fmt.Errorf("%w: gravity must not be negative, got %g", ErrInvalid, c.Physics.Gravity)
	case c.Obstacles.Amount < 0:
		return fmt.Errorf("%w: obstacle amount must not be negative, got %d", ErrInvalid, c.Obstacles.Amount)
	case !(c.Obstacles.Width > 0) || !(c.Obstacles.Height > 0):
		return fmt.Errorf("%w: obstacle size must be positive, got %gx%g", ErrInvalid, c.Obstacles.Width, c.Obstacles.Height)
	case !(c.Obstacles.Spacing > 0):
		return fmt.Errorf("%w: obstacle spacing must be positive, got %g", ErrInvalid, c.Obstacles.Spacing)
	case c.Obstacles.VerticalOffset < 0:
		return fmt.Errorf("%w: vertical_offset must not be negative, got %g", ErrInvalid, c.Obstacles.VerticalOffset)
	case c.Obstacles.ScrollSpeed < 0:
		return fmt.Errorf("%w: scroll_speed must not be negative, got %g", ErrInvalid, c.Obstacles.ScrollSpeed)
	}
	if err := c.Viewport().Validate(); err != nil {
		return fmt.Errorf("%w: window: %w", ErrInvalid, err)
	}
	return nil
}
