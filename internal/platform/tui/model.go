package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/cube-chase/internal/core"
	"github.com/vovakirdan/cube-chase/internal/game"
	"github.com/vovakirdan/cube-chase/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Driver { return Driver{} })
}

// Model is the Bubble Tea model running a game controller.
type Model struct {
	ctrl     *game.Controller
	screen   *core.Screen
	surface  *Surface
	keys     *KeyMapper
	hold     *HoldTracker
	logger   *log.Logger
	pending  []core.Event // Events collected since the last tick
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given controller.
func NewModel(ctrl *game.Controller, opts registry.Options, width, height int) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(width, height)
	return Model{
		ctrl:    ctrl,
		screen:  screen,
		surface: NewSurface(screen),
		keys:    NewKeyMapper(),
		hold:    NewHoldTracker(opts.Terminal.KeyReleaseTicks),
		logger:  logger,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.ctrl.Start()
	return tickCmd(m.ctrl.TickRate())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the events for a key report until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.pending = append(m.pending, core.QuitEvent())
	case isBooster(key):
		m.pending = append(m.pending, m.hold.Press(key)...)
	case key != core.KeyNone:
		m.pending = append(m.pending, core.KeyDownEvent(key))
	}
	return m, nil
}

// handleTick runs one simulation frame with the queued events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	events := append(m.pending, m.hold.Tick()...)
	m.pending = nil

	res := m.ctrl.Frame(events)
	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.ctrl.TickRate())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.ctrl.Draw(m.surface)
	return RenderScreen(m.screen)
}

// Driver runs the game in the terminal.
type Driver struct{}

// ID implements registry.Driver.
func (Driver) ID() string { return "tui" }

// Title implements registry.Driver.
func (Driver) Title() string { return "Terminal (Bubble Tea)" }

// Run implements registry.Driver. It takes over the terminal with the
// alternate screen until the player quits.
func (Driver) Run(ctx context.Context, c *game.Controller, opts registry.Options) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	p := tea.NewProgram(
		NewModel(c, opts, width, height),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
