// Package headless runs the game without a display. It is used by the
// simulate command and by tests that need the full frame loop.
package headless

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-chase/internal/core"
	"github.com/vovakirdan/cube-chase/internal/game"
	"github.com/vovakirdan/cube-chase/internal/registry"
)

func init() {
	registry.Register("headless", func() registry.Driver { return Driver{} })
}

// Clock paces the loop.
type Clock interface {
	Wait(ctx context.Context) error
	Stop()
}

// NopClock never blocks; frames run as fast as possible.
type NopClock struct{}

// Wait implements Clock. It only reports cancellation.
func (NopClock) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Stop implements Clock.
func (NopClock) Stop() {}

// TickerClock waits for wall-clock ticks.
type TickerClock struct {
	ticker *time.Ticker
}

// NewTickerClock creates a clock firing tickRate times per second.
func NewTickerClock(tickRate int) *TickerClock {
	return &TickerClock{ticker: time.NewTicker(time.Second / time.Duration(tickRate))}
}

// Wait implements Clock.
func (c *TickerClock) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

// Stop implements Clock.
func (c *TickerClock) Stop() {
	c.ticker.Stop()
}

// Platform feeds scripted input to the controller and records drawing.
type Platform struct {
	clock   Clock
	surface *core.RecordingSurface
	script  map[int][]core.Event // Events by frame number
	frames  int                  // Frame budget; 0 means unlimited
	polled  int
	logger  *log.Logger
}

// NewPlatform creates a platform whose run ends after frames frames.
func NewPlatform(clock Clock, frames int, logger *log.Logger) *Platform {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Platform{
		clock:   clock,
		surface: core.NewRecordingSurface(),
		script:  make(map[int][]core.Event),
		frames:  frames,
		logger:  logger,
	}
}

// Inject schedules events for the given frame, counted from zero.
func (p *Platform) Inject(frame int, events ...core.Event) {
	p.script[frame] = append(p.script[frame], events...)
}

// Poll implements game.Platform. The poll for the last budgeted frame
// carries a quit event, so the controller simulates exactly frames frames.
func (p *Platform) Poll() []core.Event {
	frame := p.polled
	p.polled++

	events := p.script[frame]
	if p.frames > 0 && frame >= p.frames-1 {
		p.logger.Debug("frame budget spent", "frames", p.frames)
		events = append(events, core.QuitEvent())
	}
	return events
}

// Surface implements game.Platform. The recording is reset each frame.
func (p *Platform) Surface() core.Surface {
	p.surface.Reset()
	return p.surface
}

// Present implements game.Platform.
func (p *Platform) Present() error {
	return nil
}

// Wait implements game.Platform.
func (p *Platform) Wait(ctx context.Context) error {
	return p.clock.Wait(ctx)
}

// Recording returns the draw calls of the last presented frame.
func (p *Platform) Recording() *core.RecordingSurface {
	return p.surface
}

// Driver runs the game with no display.
type Driver struct{}

// ID implements registry.Driver.
func (Driver) ID() string { return "headless" }

// Title implements registry.Driver.
func (Driver) Title() string { return "Headless simulation" }

// Run implements registry.Driver.
func (Driver) Run(ctx context.Context, c *game.Controller, opts registry.Options) error {
	var clock Clock = NopClock{}
	if opts.Realtime {
		clock = NewTickerClock(c.TickRate())
	}
	defer clock.Stop()

	return c.Run(ctx, NewPlatform(clock, opts.Frames, opts.Logger))
}
