// Package window runs the game in a desktop window with Ebitengine.
// Unlike a terminal, a window reports real key releases, so boosters
// follow the keyboard exactly.
package window

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cube-chase/internal/core"
	"github.com/vovakirdan/cube-chase/internal/game"
	"github.com/vovakirdan/cube-chase/internal/registry"
)

// Title is the window caption.
const Title = "Cube Chase"

func init() {
	registry.Register("window", func() registry.Driver { return Driver{} })
}

// Driver runs the game in an 800×600 window.
type Driver struct{}

// ID implements registry.Driver.
func (Driver) ID() string { return "window" }

// Title implements registry.Driver.
func (Driver) Title() string { return "Desktop window (Ebitengine)" }

// Run implements registry.Driver. Ebitengine owns the main loop until the
// window is closed or the player quits.
func (Driver) Run(ctx context.Context, c *game.Controller, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ebiten.SetWindowSize(core.ScreenWidth, core.ScreenHeight)
	ebiten.SetWindowTitle(Title)
	ebiten.SetTPS(c.TickRate())
	ebiten.SetWindowClosingHandled(true)
	// The game-over banner is drawn over the last running frame
	ebiten.SetScreenClearedEveryFrame(false)

	c.Start()
	logger.Debug("opening window", "tps", c.TickRate())

	err := ebiten.RunGame(&runner{ctx: ctx, ctrl: c})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// runner adapts the controller to ebiten.Game.
type runner struct {
	ctx  context.Context
	ctrl *game.Controller

	pressed  []ebiten.Key
	released []ebiten.Key
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	if err := r.ctx.Err(); err != nil {
		return err
	}

	r.pressed = inpututil.AppendJustPressedKeys(r.pressed[:0])
	r.released = inpututil.AppendJustReleasedKeys(r.released[:0])

	res := r.ctrl.Frame(translate(r.pressed, r.released, ebiten.IsWindowBeingClosed()))
	if res.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	r.ctrl.Draw(surface{dst: screen})
}

// Layout implements ebiten.Game.
func (r *runner) Layout(_, _ int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}
