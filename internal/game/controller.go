// Package game implements Cube Chase: a player cube grows by catching a
// roaming life and shrinks when enemies touch it. The game is pure logic;
// drivers feed it input events once per tick and give it a surface to draw on.
package game

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/core"
)

// Handler reacts to an input event.
type Handler func(ev core.Event)

// Registrar accepts input handlers.
type Registrar interface {
	RegisterEventHandler(t core.EventType, h Handler)
	RegisterKey(k core.Key, h Handler)
}

// Platform is a pull-style backend for Run: it is polled for input,
// provides the surface, presents finished frames and paces the loop.
type Platform interface {
	Poll() []core.Event
	Surface() core.Surface
	Present() error
	Wait(ctx context.Context) error
}

// Controller owns all game state, the input dispatch tables and the game
// lifecycle. It is not safe for concurrent use; drivers call it from a
// single goroutine.
type Controller struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	rng     *rand.Rand
	session *Session

	events map[core.EventType][]Handler
	keymap map[core.Key][]Handler

	world   World
	cube    *Cube
	life    *Life
	enemies []*Enemy

	state    core.GameState
	frames   int // Ticks since construction
	seconds  int // Whole seconds of play, derived from frames
	quitting bool
}

// NewController builds a game in the PRESTART state. A nil logger discards output.
func NewController(cfg config.GameConfig, runtime core.RuntimeConfig, logger *log.Logger) *Controller {
	logger = orDiscard(logger)
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	session := NewSession(rng, cfg.Enemy)

	c := &Controller{
		cfg:     cfg,
		runtime: runtime,
		logger:  logger,
		rng:     rng,
		session: &session,
		events:  make(map[core.EventType][]Handler),
		keymap:  make(map[core.Key][]Handler),
		state:   core.StatePrestart,
	}

	c.RegisterEventHandler(core.EventQuit, c.quit)
	c.RegisterKey(core.KeyEscape, c.quit)
	c.RegisterKey(core.KeyR, c.restart)

	c.cube = NewCube(cfg.Cube)
	c.cube.Bind(c)
	c.life = NewLife(cfg.Life, rng, logger, c.cube.Box())
	c.enemies = make([]*Enemy, cfg.Enemy.Count)
	for i := range c.enemies {
		c.enemies[i] = NewEnemy(cfg.Enemy.ActorConfig, c.session, rng, logger, c.cube.Box())
	}

	logger.Debug("controller ready", "seed", runtime.Seed, "enemy_speed", session.EnemySpeed)
	return c
}

// RegisterEventHandler adds h to the handlers run for every event of type t.
// Handlers run in registration order.
func (c *Controller) RegisterEventHandler(t core.EventType, h Handler) {
	c.logger.Debug("registering event handler", "event", t)
	c.events[t] = append(c.events[t], h)
}

// RegisterKey adds h to the handlers run when k goes down.
// Handlers run in registration order.
func (c *Controller) RegisterKey(k core.Key, h Handler) {
	c.logger.Debug("binding key", "key", k)
	c.keymap[k] = append(c.keymap[k], h)
}

// Start moves the game from PRESTART to RUNNING. Later calls do nothing.
func (c *Controller) Start() {
	if c.state == core.StatePrestart {
		c.state = core.StateRunning
	}
}

// Run drives the game with a pull-style platform until a quit request
// or until ctx is done.
func (c *Controller) Run(ctx context.Context, p Platform) error {
	c.Start()

	for {
		res := c.Frame(p.Poll())
		if res.Quit {
			return nil
		}

		c.Draw(p.Surface())
		if err := p.Present(); err != nil {
			return fmt.Errorf("game: present frame: %w", err)
		}
		if err := p.Wait(ctx); err != nil {
			return err
		}
	}
}

// Frame advances the game by one tick: it dispatches input, moves every
// actor, resolves collisions and advances the clock.
func (c *Controller) Frame(events []core.Event) core.StepResult {
	c.dispatch(events)

	c.life.Update()
	for _, e := range c.enemies {
		e.Update()
	}
	c.cube.Update()

	c.collideLife()
	if c.cube.Point() <= 0 && c.state == core.StateRunning {
		c.state = core.StateGameOver
		c.logger.Info("game over", "seconds", c.seconds, "size", c.cube.Size())
	}
	c.collideEnemies()

	c.frames++
	if c.frames%c.runtime.TickRate == 0 {
		c.seconds++
	}

	if c.state == core.StateGameOver {
		c.cube.Stop()
	}

	return core.StepResult{State: c.state, Quit: c.quitting}
}

// dispatch runs the handlers for each event. Every matching handler runs,
// event-type handlers before key handlers.
func (c *Controller) dispatch(events []core.Event) {
	for _, ev := range events {
		c.logger.Debug("handling event", "event", ev)

		for _, h := range c.events[ev.Type] {
			h(ev)
		}
		if ev.Type == core.EventKeyDown {
			for _, h := range c.keymap[ev.Key] {
				h(ev)
			}
		}
	}
}

func (c *Controller) collideLife() {
	if !c.cube.Box().Overlaps(c.life.Box()) {
		return
	}
	c.life.Reset(c.cube.Box())
	c.cube.apply(GrowOnLife(c.cube.Size(), c.cfg.Cube, c.cfg.Capture))
}

func (c *Controller) collideEnemies() {
	for _, e := range c.enemies {
		if !c.cube.Box().Overlaps(e.Box()) {
			continue
		}
		e.Reset(c.cube.Box())
		c.cube.apply(ShrinkOnEnemy(c.cube.Size(), c.cfg.Cube, c.cfg.Capture))
	}
}

// Draw renders the current state. Nothing is drawn before the game starts.
func (c *Controller) Draw(dst core.Surface) {
	switch c.state {
	case core.StateRunning:
		c.world.Draw(dst)
		c.cube.Draw(dst)
		c.life.Draw(dst)
		for _, e := range c.enemies {
			e.Draw(dst)
		}
		hud := c.cfg.HUD
		dst.DrawText(10, 1, fmt.Sprintf(hud.TimeFormat, c.seconds), core.TextStyle{
			Size:  hud.TimeSize,
			Color: core.ColorText,
		})

	case core.StateGameOver:
		c.drawBanner(dst)
	}
}

// drawBanner draws the game-over panel over whatever the last frame left.
func (c *Controller) drawBanner(dst core.Surface) {
	hud := c.cfg.HUD
	w, h := dst.Bounds()
	m := hud.BannerMargin

	dst.FillRect(m, m, w-2*m, h-2*m, core.ColorPanel)
	dst.DrawText(w/2, h/2, hud.BannerText, core.TextStyle{
		Size:     hud.BannerSize,
		Color:    core.ColorText,
		Centered: true,
	})
}

func (c *Controller) quit(core.Event) {
	c.logger.Info("quitting... good bye!")
	c.quitting = true
}

func (c *Controller) restart(core.Event) {
	c.logger.Info("restarting...")
	c.cube.Reset()
	c.state = core.StateRunning
	c.life.Reset(c.cube.Box())
	for _, e := range c.enemies {
		e.Reset(c.cube.Box())
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() core.GameState {
	return c.state
}

// Quitting reports whether a quit request has been handled.
func (c *Controller) Quitting() bool {
	return c.quitting
}

// Seconds returns the elapsed play time in whole seconds.
func (c *Controller) Seconds() int {
	return c.seconds
}

// Frames returns the number of ticks simulated.
func (c *Controller) Frames() int {
	return c.frames
}

// Session returns the session values.
func (c *Controller) Session() Session {
	return *c.session
}

// TickRate returns the simulation rate in ticks per second.
func (c *Controller) TickRate() int {
	return c.runtime.TickRate
}

// Cube returns the player's cube.
func (c *Controller) Cube() *Cube {
	return c.cube
}

// Life returns the pickup.
func (c *Controller) Life() *Life {
	return c.life
}

// Enemies returns the enemies in update order.
func (c *Controller) Enemies() []*Enemy {
	return c.enemies
}
