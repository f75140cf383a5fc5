package birdy

import (
	"github.com/vovakirdan/birdy/internal/config"
	"github.com/vovakirdan/birdy/internal/core"
)

// MaxRotation bounds the flyer's display angle in degrees.
const MaxRotation = 90.0

// Flyer is the single player-controlled actor. It is created once and
// only ever reset, never recreated.
type Flyer struct {
	pos     core.Vec2 // X stays at the origin column, Y integrates velocity
	vel     float64   // Vertical velocity, positive is up
	origin  core.Vec2
	physics config.PhysicsConfig
}

// NewFlyer creates a flyer resting at origin.
func NewFlyer(origin core.Vec2, physics config.PhysicsConfig) *Flyer {
	return &Flyer{pos: origin, origin: origin, physics: physics}
}

// Step advances the flyer by dt seconds.
// A flap replaces the current velocity instead of adding to it; gravity
// is applied afterwards on every step.
func (f *Flyer) Step(dt float64, flap bool) {
	if flap {
		f.vel = f.physics.FlapForce
	}
	f.vel -= f.physics.Gravity * dt
	f.pos.Y += f.vel * dt
}

// Reset puts the flyer back at its origin with no velocity.
func (f *Flyer) Reset() {
	f.pos = f.origin
	f.vel = 0
}

// Position returns the flyer's current position.
func (f *Flyer) Position() core.Vec2 {
	return f.pos
}

// VelocityY returns the current vertical velocity.
func (f *Flyer) VelocityY() float64 {
	return f.vel
}

// Rotation returns the display angle in degrees implied by the current velocity.
func (f *Flyer) Rotation() float64 {
	return RotationFor(f.vel, f.physics.VelocityToRotation)
}

// RotationFor maps a vertical velocity to a display angle in degrees,
// clamped to [-MaxRotation, MaxRotation].
func RotationFor(velocity, divisor float64) float64 {
	return core.ClampF(velocity/divisor, -MaxRotation, MaxRotation)
}
