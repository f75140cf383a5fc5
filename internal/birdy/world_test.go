package birdy

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/birdy/internal/config"
	"github.com/vovakirdan/birdy/internal/core"
	"github.com/vovakirdan/birdy/internal/sprite"
)

const pipeImage sprite.Handle = 1

var squareViewport = core.Viewport{Width: 512, Height: 512}

func newTestWorld(t *testing.T, cfg config.BirdyConfig, src OffsetSource) *World {
	t.Helper()
	w, err := New(cfg, squareViewport, pipeImage, src)
	require.NoError(t, err)
	return w
}

func TestNew_InitializationFailures(t *testing.T) {
	cfg := config.DefaultBirdyConfig()
	src := NewSequenceSource(0)

	_, err := New(cfg, core.Viewport{}, pipeImage, src)
	assert.ErrorIs(t, err, ErrInvalidViewport)
	assert.ErrorIs(t, err, core.ErrEmptyViewport)

	_, err = New(cfg, squareViewport, 0, src)
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = New(cfg, squareViewport, pipeImage, nil)
	assert.ErrorIs(t, err, ErrNoOffsetSource)

	bad := cfg
	bad.Scale = 0
	_, err = New(bad, squareViewport, pipeImage, src)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestNew_InitialState(t *testing.T) {
	cfg := config.DefaultBirdyConfig()
	w := newTestWorld(t, cfg, NewSequenceSource(0))

	assert.Equal(t, core.Vec2{}, w.Flyer().Position())
	assert.Equal(t, 0.0, w.Flyer().VelocityY())
	assert.Len(t, w.Obstacles(), 2*cfg.Pairs())
	assert.Equal(t, Stats{}, w.Stats())
}

func TestDeathBoundary(t *testing.T) {
	w := newTestWorld(t, config.DefaultBirdyConfig(), NewSequenceSource(0))
	w.field.obstacles = nil

	tests := []struct {
		y    float64
		want Verdict
	}{
		{-257, Dead},
		{-256, Dead},
		{-255, Alive},
		{10000, Alive}, // no upper bound
	}
	for _, tc := range tests {
		w.flyer.pos.Y = tc.y
		verdict, cause := w.Evaluate()
		assert.Equal(t, tc.want, verdict, "y=%v", tc.y)
		if tc.want == Dead {
			assert.Equal(t, CauseFell, cause)
		}
	}
}

func TestCollisionBoundary(t *testing.T) {
	cfg := config.DefaultBirdyConfig()
	require.Equal(t, 32.0, cfg.Obstacles.Width)
	require.Equal(t, 144.0, cfg.Obstacles.Height)
	require.Equal(t, 4.0, cfg.Scale)

	tests := []struct {
		name  string
		flyer core.Vec2
		want  Verdict
	}{
		{"dx 63", core.Vec2{X: 63}, Dead},
		{"dx 64 edge", core.Vec2{X: 64}, Alive},
		{"dx 65", core.Vec2{X: 65}, Alive},
		{"dx -63", core.Vec2{X: -63}, Dead},
		{"dy 287.9", core.Vec2{Y: 287.9}, Dead},
		{"dy 288 edge", core.Vec2{Y: 288}, Alive},
		{"dy 287", core.Vec2{Y: 287}, Dead},
		{"dy -200", core.Vec2{Y: -200}, Dead},
		{"both inside", core.Vec2{X: 60, Y: 280}, Dead},
		{"dx inside dy outside", core.Vec2{X: 10, Y: 300}, Alive},
	}

	for _, dir := range []Direction{DirectionTop, DirectionBottom} {
		for _, tc := range tests {
			t.Run(dir.String()+"/"+tc.name, func(t *testing.T) {
				w := newTestWorld(t, cfg, NewSequenceSource(0))
				w.field.obstacles = []Obstacle{{Direction: dir, Image: pipeImage}}
				w.flyer.pos = tc.flyer

				verdict, cause := w.Evaluate()
				assert.Equal(t, tc.want, verdict)
				if tc.want == Dead {
					assert.Equal(t, CauseObstacle, cause)
				}
			})
		}
	}
}

func TestStep_DeathResetsFlyerAndRespawnsField(t *testing.T) {
	cfg := config.DefaultBirdyConfig()
	src := NewSequenceSource(5, -3, 2)
	w := newTestWorld(t, cfg, src)

	w.flyer.pos = core.Vec2{X: 0, Y: -300}
	w.flyer.vel = -100

	res := w.Step(0.016, false)

	assert.Equal(t, Dead, res.Verdict)
	assert.Equal(t, CauseFell, res.Cause)
	assert.Equal(t, cfg.Origin(), w.Flyer().Position())
	assert.Equal(t, 0.0, w.Flyer().VelocityY())
	assert.Equal(t, 2, w.field.Generation())
	assert.Equal(t, 1, w.Stats().Deaths)

	// The scroll pass runs on the fresh field in the same step.
	top, bottom := w.field.Pair(0)
	dx := cfg.Obstacles.ScrollSpeed * 0.016
	assert.InDelta(t, squareViewport.Width/2-dx, top.Position.X, 1e-9)
	assert.Equal(t, top.Position.X, bottom.Position.X)
}

func TestStep_ObstacleDeath(t *testing.T) {
	cfg := config.DefaultBirdyConfig()
	w := newTestWorld(t, cfg, NewSequenceSource(0))

	// Put pair 0 right on top of the flyer.
	w.field.obstacles[0].Position = core.Vec2{X: 10, Y: 100}

	res := w.Step(0.016, false)
	assert.Equal(t, Dead, res.Verdict)
	assert.Equal(t, CauseObstacle, res.Cause)

	verdict, _ := w.Evaluate()
	assert.Equal(t, Alive, verdict, "fresh field leaves the flyer clear")
}

func TestHandleDeath_Idempotent(t *testing.T) {
	cfg := config.DefaultBirdyConfig()
	w := newTestWorld(t, cfg, NewRandSource(7))

	w.flyer.pos = core.Vec2{X: 0, Y: -1000}
	w.flyer.vel = -1234

	w.HandleDeath()
	once := *w.flyer
	xsOnce := obstacleXs(w.Obstacles())

	w.HandleDeath()
	assert.Equal(t, once, *w.flyer)
	assert.Equal(t, cfg.Origin(), w.Flyer().Position())
	assert.Equal(t, 0.0, w.Flyer().VelocityY())
	assert.Equal(t, xsOnce, obstacleXs(w.Obstacles()))
	assert.Len(t, w.Obstacles(), 2*cfg.Pairs())
}

func obstacleXs(obs []Obstacle) []float64 {
	xs := make([]float64, len(obs))
	for i, o := range obs {
		xs[i] = o.Position.X
	}
	return xs
}

func TestStep_ZeroAndNegativeDelta(t *testing.T) {
	w := newTestWorld(t, config.DefaultBirdyConfig(), NewSequenceSource(1))
	w.flyer.vel = 42
	before := w.Obstacles()

	for _, dt := range []float64{0, -0.5, math.NaN()} {
		res := w.Step(dt, false)
		assert.Equal(t, Alive, res.Verdict)
		assert.Equal(t, 42.0, w.Flyer().VelocityY())
		assert.Equal(t, core.Vec2{}, w.Flyer().Position())
		assert.Equal(t, before, w.Obstacles())
	}
}

func TestSetViewport(t *testing.T) {
	cfg := config.DefaultBirdyConfig()
	w := newTestWorld(t, cfg, NewSequenceSource(0))

	err := w.SetViewport(core.Viewport{Width: -1, Height: 10})
	assert.ErrorIs(t, err, ErrInvalidViewport)
	assert.Equal(t, squareViewport, w.Viewport())

	require.NoError(t, w.SetViewport(core.Viewport{Width: 1024, Height: 512}))
	w.HandleDeath()

	top, _ := w.field.Pair(0)
	assert.Equal(t, 512.0, top.Position.X)
}

func TestEndToEnd_FallsAndRespawnsDeterministically(t *testing.T) {
	cfg := config.DefaultBirdyConfig()
	src := NewSequenceSource(5, -3, 2)
	w := newTestWorld(t, cfg, src)

	const dt = 0.016
	gap := cfg.CenteredGapPosition()

	// Spawn consumed one draw per pair.
	require.Equal(t, cfg.Pairs(), src.Drawn())
	top, bottom := w.field.Pair(0)
	assert.Equal(t, gap+20, top.Position.Y)
	assert.Equal(t, -gap+20, bottom.Position.Y)

	// Free fall: y_n = -G*dt^2 * n(n+1)/2 first reaches -256 at n = 32.
	expectedDeathStep := 0
	y, v := 0.0, 0.0
	for n := 1; expectedDeathStep == 0; n++ {
		v -= cfg.Physics.Gravity * dt
		y += v * dt
		if y <= -squareViewport.HalfHeight() {
			expectedDeathStep = n
		}
	}
	require.Equal(t, 32, expectedDeathStep)

	var deaths []int
	for step := 1; step <= 200; step++ {
		res := w.Step(dt, false)
		if res.Verdict != Dead {
			continue
		}
		deaths = append(deaths, step)

		if len(deaths) == 1 {
			assert.Equal(t, CauseFell, res.Cause)
			assert.Equal(t, core.Vec2{}, w.Flyer().Position())

			top, bottom := w.field.Pair(0)
			assert.InDelta(t, squareViewport.Width/2-cfg.Obstacles.ScrollSpeed*dt, top.Position.X, 1e-9)
			assert.Equal(t, top.Position.X, bottom.Position.X)

			// No recycling happened, so the respawn started at draw 41: 41 % 3 == 2 -> offset 2.
			assert.Equal(t, gap+8, top.Position.Y)
			assert.Equal(t, -gap+8, bottom.Position.Y)
			assert.Equal(t, 2*cfg.Pairs(), src.Drawn())
		}
	}

	// After each reset the flyer repeats the same fall.
	assert.Equal(t, []int{32, 64, 96, 128, 160, 192}, deaths)
	assert.Equal(t, Stats{Steps: 200, Deaths: 6}, w.Stats())
}

func TestDeterminism(t *testing.T) {
	// A hovering flyer always sits inside the gap when offsets stay within ±40.
	cfg := config.DefaultBirdyConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.VerticalOffset = 10
	cfg.Obstacles.ScrollSpeed = 600

	run := func(seed int64) (Frame, Stats) {
		w := newTestWorld(t, cfg, NewRandSource(seed))
		for i := 0; i < 2000; i++ {
			w.Step(1.0/60, false)
		}
		return w.Snapshot(), w.Stats()
	}

	f1, s1 := run(12345)
	f2, s2 := run(12345)
	assert.Equal(t, f1, f2)
	assert.Equal(t, s1, s2)
	assert.Zero(t, s1.Deaths)
	assert.Positive(t, s1.Recycled)

	f3, _ := run(54321)
	assert.NotEqual(t, f1.Obstacles, f3.Obstacles)
}

func TestSnapshot(t *testing.T) {
	cfg := config.DefaultBirdyConfig()
	const flyerImage sprite.Handle = 2
	w, err := New(cfg, squareViewport, pipeImage, NewSequenceSource(0), WithFlyerImage(flyerImage))
	require.NoError(t, err)

	w.Step(0.016, true)
	f := w.Snapshot()

	assert.Equal(t, 1, f.Step)
	assert.Equal(t, squareViewport, f.Viewport)
	assert.Equal(t, KindFlyer, f.Flyer.Kind)
	assert.Equal(t, flyerImage, f.Flyer.Image)
	assert.Equal(t, w.Flyer().Position(), f.Flyer.Position)
	assert.Equal(t, w.Flyer().Rotation(), f.Flyer.Rotation)
	assert.InDelta(t, cfg.Scale/90, f.Flyer.Scale[0], 1e-12)

	require.Len(t, f.Obstacles, 2*cfg.Pairs())
	for i, e := range f.Obstacles {
		assert.Equal(t, KindObstacle, e.Kind)
		assert.Equal(t, pipeImage, e.Image, "obstacles share one image handle")
		assert.Equal(t, [3]float64{4, 4, 4}, e.Scale)
		if i%2 == 0 {
			assert.Equal(t, DirectionTop, e.Direction)
		} else {
			assert.Equal(t, DirectionBottom, e.Direction)
		}
	}

	// Mutating the frame leaves the world untouched.
	f.Obstacles[0].Position.X = 1e9
	assert.NotEqual(t, 1e9, w.Obstacles()[0].Position.X)
}

func TestLoggerReceivesLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	w, err := New(config.DefaultBirdyConfig(), squareViewport, pipeImage, NewSequenceSource(0), WithLogger(logger))
	require.NoError(t, err)

	w.flyer.pos.Y = -1000
	w.Step(0.016, false)

	out := buf.String()
	assert.Contains(t, out, "field spawned")
	assert.Contains(t, out, "flyer died")
	assert.Contains(t, out, "cause=fell")
	assert.Contains(t, out, "field respawned")
}

func TestVerdictAndCauseStrings(t *testing.T) {
	assert.Equal(t, "alive", Alive.String())
	assert.Equal(t, "dead", Dead.String())
	assert.Equal(t, "unknown", Verdict(9).String())
	assert.Equal(t, "none", CauseNone.String())
	assert.Equal(t, "fell", CauseFell.String())
	assert.Equal(t, "obstacle", CauseObstacle.String())
	assert.Equal(t, "unknown", Cause(9).String())
}
