package headless

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/core"
	"github.com/vovakirdan/cube-chase/internal/game"
	"github.com/vovakirdan/cube-chase/internal/registry"
)

func newController(seed int64) *game.Controller {
	return game.NewController(config.DefaultGameConfig(), core.RuntimeConfig{TickRate: 60, Seed: seed}, nil)
}

func TestRunFrameBudget(t *testing.T) {
	c := newController(1)
	p := NewPlatform(NopClock{}, 120, nil)

	if err := c.Run(context.Background(), p); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Frames() != 120 {
		t.Errorf("frames = %d, want 120", c.Frames())
	}
	if c.Seconds() != 2 {
		t.Errorf("seconds = %d, want 2", c.Seconds())
	}
	if got := p.Recording().Texts(); len(got) != 1 || got[0] != "Time 1 seconds" {
		t.Errorf("last frame texts = %v", got)
	}
}

func TestInjectedEvents(t *testing.T) {
	c := newController(2)
	p := NewPlatform(NopClock{}, 0, nil)
	p.Inject(3, core.KeyDownEvent(core.KeyEscape))

	if err := c.Run(context.Background(), p); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Frames() != 4 {
		t.Errorf("frames = %d, want 4", c.Frames())
	}
	if !c.Quitting() {
		t.Error("controller not quitting")
	}
}

func TestRunCanceled(t *testing.T) {
	c := newController(3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Run(ctx, NewPlatform(NopClock{}, 0, nil))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestTickerClockCanceled(t *testing.T) {
	clock := NewTickerClock(1)
	defer clock.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := clock.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait = %v, want deadline exceeded", err)
	}
}

func TestDriverRegistered(t *testing.T) {
	d, err := registry.Create("headless")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	c := newController(4)
	if err := d.Run(context.Background(), c, registry.Options{Frames: 30}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.Frames() != 30 {
		t.Errorf("frames = %d, want 30", c.Frames())
	}
}

func TestDeterministicSimulation(t *testing.T) {
	run := func() game.Snapshot {
		c := newController(99)
		p := NewPlatform(NopClock{}, 300, nil)
		p.Inject(10, core.KeyDownEvent(core.KeyDown))
		p.Inject(80, core.KeyUpEvent(core.KeyDown), core.KeyDownEvent(core.KeyLeft))
		if err := c.Run(context.Background(), p); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return c.Snapshot()
	}

	a, b := run(), run()
	if a.CubeX != b.CubeX || a.CubeY != b.CubeY || a.CubePoint != b.CubePoint || a.Life != b.Life {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}
