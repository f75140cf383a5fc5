package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/birdy/internal/birdy"
	"github.com/vovakirdan/birdy/internal/core"
	"github.com/vovakirdan/birdy/internal/sprite"
)

// maxStep caps the simulated time of a single tick after a stall.
const maxStep = 100 * time.Millisecond

// Model is the Bubble Tea model driving one birdy world.
type Model struct {
	world   *birdy.World
	atlas   *sprite.Atlas
	screen  *core.Screen
	clock   *core.RealClock
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	trigger *core.Trigger

	// input collects actions between ticks
	input    core.InputFrame
	quitting bool
}

// NewModel creates a model for an already initialized world.
func NewModel(world *birdy.World, atlas *sprite.Atlas, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		world:   world,
		atlas:   atlas,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		clock:   core.NewRealClock(maxStep),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
		trigger: &core.Trigger{},
		input:   core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionFlap:
		m.input.Set(core.ActionFlap)
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps running;
// only the cell grid changes. One row is reserved for the status line.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height)
	return m, nil
}

// handleTick advances the simulation by the wall time since the previous tick.
// Terminals report presses but not releases, so a tick with no flap key
// event counts as the key being up.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Observe(t)
	flap := m.trigger.Update(m.input.Has(core.ActionFlap))
	m.input.Clear()

	m.world.Step(dt, flap)

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.atlas, m.world.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	stats := m.world.Stats()
	status := fmt.Sprintf("steps %d  deaths %d  recycled %d  ", stats.Steps, stats.Deaths, stats.Recycled)
	return statusStyle.Render(status) + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the given world.
func Run(world *birdy.World, atlas *sprite.Atlas, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(world, atlas, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
