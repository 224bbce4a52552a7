package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/core"
)

// drifter is the movement shared by life and enemies: it travels in a
// straight line and reappears somewhere else once it leaves the play area.
type drifter struct {
	name   string
	pos    core.Vec
	vel    core.Vec
	size   float64
	color  core.Color
	cfg    config.ActorConfig
	rng    *rand.Rand
	logger *log.Logger

	// Velocity generators for the two kinds of respawn
	respawnVel func() core.Vec
	resetVel   func() core.Vec
}

// Update moves the actor one tick. An actor outside the play area is
// placed back inside the respawn area and does not move this tick.
func (d *drifter) Update() {
	if !d.cfg.PlayArea.Bounds().Contains(d.pos) {
		d.pos = rollPosition(d.rng, d.cfg.RespawnArea)
		d.vel = d.respawnVel()
		d.logger.Debug("respawned after leaving play area", "actor", d.name, "x", d.pos.X, "y", d.pos.Y)
		return
	}
	d.pos = d.pos.Add(d.vel)
}

// Reset places the actor somewhere in the reset area. If it lands inside
// avoid, the position is rolled once more.
func (d *drifter) Reset(avoid core.Box) {
	d.pos = rollPosition(d.rng, d.cfg.ResetArea)
	d.vel = d.resetVel()
	if avoid.Contains(d.pos) {
		d.pos = rollPosition(d.rng, d.cfg.ResetArea)
	}
	d.logger.Debug("generated new location", "actor", d.name, "x", d.pos.X, "y", d.pos.Y)
}

// Draw renders the actor as a filled square centered on its position.
func (d *drifter) Draw(dst core.Surface) {
	b := d.Box()
	dst.FillRect(b.Left(), b.Top(), b.W, b.H, d.color)
}

// Box returns the actor's collision box.
func (d *drifter) Box() core.Box {
	return core.Square(d.pos, d.size)
}

// Pos returns the actor's center.
func (d *drifter) Pos() core.Vec {
	return d.pos
}

// Vel returns the actor's velocity.
func (d *drifter) Vel() core.Vec {
	return d.vel
}

// Size returns the actor's edge length.
func (d *drifter) Size() float64 {
	return d.size
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
