package game

import (
	"math"

	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/core"
)

// Cube is the player's avatar. Arrow keys switch boosters on and off;
// a booster accelerates the cube in its direction every tick.
type Cube struct {
	cfg config.CubeConfig

	pos   core.Vec
	vel   core.Vec
	size  float64
	point float64

	// Boosters, named by the direction they push the cube
	thrustUp    bool
	thrustDown  bool
	thrustLeft  bool
	thrustRight bool
}

// NewCube creates a cube in its starting state.
func NewCube(cfg config.CubeConfig) *Cube {
	c := &Cube{cfg: cfg}
	c.Reset()
	return c
}

// Reset puts the cube back at the top middle of the screen with a full
// point budget.
func (c *Cube) Reset() {
	c.pos = core.Vec{X: core.ScreenWidth / 2, Y: c.cfg.StartY}
	c.vel = core.Vec{}
	c.size = c.cfg.StartSize
	c.point = c.cfg.StartPoint
	c.thrustUp = false
	c.thrustDown = false
	c.thrustLeft = false
	c.thrustRight = false
}

// Bind registers the cube's keyboard handlers.
func (c *Cube) Bind(r Registrar) {
	r.RegisterEventHandler(core.EventKeyDown, c.KeyDown)
	r.RegisterEventHandler(core.EventKeyUp, c.KeyUp)
}

// Update applies booster thrust and damping, moves the cube and keeps it
// inside the screen margins.
func (c *Cube) Update() {
	thrust := c.cfg.Thrust

	if c.thrustUp {
		c.vel.Y -= thrust
	}
	if c.thrustDown {
		c.vel.Y += thrust
	}
	if c.thrustLeft {
		c.vel.X -= thrust
	}
	if c.thrustRight {
		c.vel.X += thrust
	}

	if !c.thrustLeft && !c.thrustRight {
		c.vel.X *= c.cfg.Damping
	}
	if !c.thrustUp && !c.thrustDown {
		c.vel.Y *= c.cfg.Damping
	}

	c.pos = c.pos.Add(c.vel)
	c.clamp()
}

// clamp stops the cube at the margins, killing velocity on the axis that hit.
func (c *Cube) clamp() {
	b := c.Bounds()

	if c.pos.X < b.MinX {
		c.pos.X = b.MinX
		c.vel.X = 0
	} else if c.pos.X > b.MaxX {
		c.pos.X = b.MaxX
		c.vel.X = 0
	}

	if c.pos.Y < b.MinY {
		c.pos.Y = b.MinY
		c.vel.Y = 0
	} else if c.pos.Y > b.MaxY {
		c.pos.Y = b.MaxY
		c.vel.Y = 0
	}
}

// Bounds returns the range the cube's center may occupy at its current size.
func (c *Cube) Bounds() core.Bounds {
	half := c.size / 2
	m := c.cfg.Margin
	return core.Bounds{
		MinX: m.Left + half,
		MinY: m.Top + half,
		MaxX: core.ScreenWidth - m.Right - half,
		MaxY: core.ScreenHeight - m.Bottom - half,
	}
}

// KeyDown switches on the booster for an arrow key.
func (c *Cube) KeyDown(ev core.Event) {
	c.setBooster(ev.Key, true)
}

// KeyUp switches off the booster for an arrow key.
func (c *Cube) KeyUp(ev core.Event) {
	c.setBooster(ev.Key, false)
}

func (c *Cube) setBooster(k core.Key, on bool) {
	switch k {
	case core.KeyUp:
		c.thrustUp = on
	case core.KeyDown:
		c.thrustDown = on
	case core.KeyLeft:
		c.thrustLeft = on
	case core.KeyRight:
		c.thrustRight = on
	}
}

// Stop zeroes the cube's velocity.
func (c *Cube) Stop() {
	c.vel = core.Vec{}
}

// Draw renders the cube and the point bar along the left screen edge.
func (c *Cube) Draw(dst core.Surface) {
	b := c.Box()
	dst.FillRect(b.Left(), b.Top(), b.W, b.H, core.ColorCube)

	_, h := dst.Bounds()
	barW := c.cfg.PointBarWidth
	dst.FillRect(0, 0, barW, h, core.ColorPanel)
	if fill := math.Max(0, c.point/c.cfg.StartPoint*h); fill > 0 {
		dst.FillRect(0, 0, barW, fill, core.ColorPointBar)
	}
}

// Box returns the cube's collision box.
func (c *Cube) Box() core.Box {
	return core.Square(c.pos, c.size)
}

// Pos returns the cube's center.
func (c *Cube) Pos() core.Vec {
	return c.pos
}

// Vel returns the cube's velocity.
func (c *Cube) Vel() core.Vec {
	return c.vel
}

// Size returns the cube's edge length.
func (c *Cube) Size() float64 {
	return c.size
}

// Point returns the remaining point budget.
func (c *Cube) Point() float64 {
	return c.point
}
