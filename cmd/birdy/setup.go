package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdy/internal/birdy"
	"github.com/vovakirdan/birdy/internal/config"
	"github.com/vovakirdan/birdy/internal/core"
	"github.com/vovakirdan/birdy/internal/sprite"
)

// session bundles everything a frontend needs to drive one world.
type session struct {
	atlas *sprite.Atlas
	world *birdy.World
	seed  int64
}

// newSession loads configuration and sprites and builds a world.
// fit, when set, adjusts the configured viewport before the world is created.
func newSession(logger *log.Logger, fit func(core.Viewport) core.Viewport) (*session, error) {
	cfg, err := config.LoadBirdy(flagConfig)
	if err != nil {
		return nil, err
	}

	atlas, err := sprite.LoadDefault()
	if err != nil {
		return nil, err
	}
	pipe, err := atlas.Lookup(sprite.PipeName)
	if err != nil {
		return nil, err
	}
	flyer, err := atlas.Lookup(sprite.FlyerName)
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	viewport := cfg.Viewport()
	if fit != nil {
		viewport = fit(viewport)
	}

	world, err := birdy.New(cfg, viewport, pipe, birdy.NewRandSource(seed),
		birdy.WithFlyerImage(flyer),
		birdy.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create world: %w", err)
	}

	logger.Debug("world ready", "seed", seed, "viewport", fmt.Sprintf("%gx%g", viewport.Width, viewport.Height))
	return &session{atlas: atlas, world: world, seed: seed}, nil
}
