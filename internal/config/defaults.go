package config

import (
	_ "embed"
)

//go:embed defaults/birdy.yaml
var defaultBirdyYAML []byte

// Compile-time defaults. Spatial values are in sprite pixels.
const (
	DefaultScale              = 4.0
	DefaultWindowSide         = 128.0
	DefaultFlapForce          = 500.0
	DefaultGravity            = 2000.0
	DefaultVelocityToRotation = 10.0
	DefaultObstacleAmount     = 40
	DefaultObstacleWidth      = 32.0
	DefaultObstacleHeight     = 144.0
	DefaultVerticalOffset     = 30.0
	DefaultGapSize            = 15.0
	DefaultSpacing            = 60.0
	DefaultScrollSpeed        = 150.0
	DefaultFlyerSpriteScale   = 1.0 / 90.0
)

// DefaultBirdyConfig returns the built-in configuration.
func DefaultBirdyConfig() BirdyConfig {
	return BirdyConfig{
		Scale: DefaultScale,
		Window: WindowConfig{
			Width:  DefaultWindowSide,
			Height: DefaultWindowSide,
		},
		Physics: PhysicsConfig{
			FlapForce:          DefaultFlapForce,
			Gravity:            DefaultGravity,
			VelocityToRotation: DefaultVelocityToRotation,
		},
		Flyer: FlyerConfig{
			SpriteScale: DefaultFlyerSpriteScale,
		},
		Obstacles: ObstacleConfig{
			Amount:         DefaultObstacleAmount,
			Width:          DefaultObstacleWidth,
			Height:         DefaultObstacleHeight,
			VerticalOffset: DefaultVerticalOffset,
			GapSize:        DefaultGapSize,
			Spacing:        DefaultSpacing,
			ScrollSpeed:    DefaultScrollSpeed,
		},
	}
}
