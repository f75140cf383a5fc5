package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/birdy/internal/core"
	"github.com/vovakirdan/birdy/internal/platform/tui"
)

var (
	flagFPS     int
	flagFit     bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W - Flap
  Q/Esc      - Quit

The field is drawn scaled to the terminal. With --fit the visible field
width follows the terminal's aspect ratio instead of the configured window.

Examples:
  birdy play
  birdy play --fit
  birdy play --seed 42 --log-level debug --log-file birdy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Fit the field width to the terminal aspect ratio")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded if empty)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The terminal belongs to bubbletea, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	var fit func(core.Viewport) core.Viewport
	if flagFit {
		fit = func(v core.Viewport) core.Viewport {
			return fitViewport(v, width, height-1)
		}
	}

	s, err := newSession(logger, fit)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     s.seed,
	}
	if err := tui.Run(s.world, s.atlas, cfg, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	stats := s.world.Stats()
	logger.Info("session ended", "steps", stats.Steps, "deaths", stats.Deaths)
	return nil
}

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// fitViewport keeps the viewport height and widens or narrows it so that
// world units are square on a cols x rows terminal.
func fitViewport(v core.Viewport, cols, rows int) core.Viewport {
	if cols <= 0 || rows <= 0 {
		return v
	}
	v.Width = v.Height * float64(cols) / (float64(rows) * cellAspect)
	return v
}
