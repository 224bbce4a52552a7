package game

// ActorSnapshot is the position and velocity of one actor.
type ActorSnapshot struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

// Snapshot captures the complete game state for determinism testing and reports.
type Snapshot struct {
	Frames     int     `yaml:"frames"`
	Seconds    int     `yaml:"seconds"`
	State      string  `yaml:"state"`
	EnemySpeed float64 `yaml:"enemy_speed"`

	CubeX     float64 `yaml:"cube_x"`
	CubeY     float64 `yaml:"cube_y"`
	CubeVX    float64 `yaml:"cube_vx"`
	CubeVY    float64 `yaml:"cube_vy"`
	CubeSize  float64 `yaml:"cube_size"`
	CubePoint float64 `yaml:"cube_point"`

	Life    ActorSnapshot   `yaml:"life"`
	Enemies []ActorSnapshot `yaml:"enemies"`
}

// Snapshot returns the current game snapshot.
func (c *Controller) Snapshot() Snapshot {
	pos, vel := c.cube.Pos(), c.cube.Vel()

	s := Snapshot{
		Frames:     c.frames,
		Seconds:    c.seconds,
		State:      c.state.String(),
		EnemySpeed: c.session.EnemySpeed,
		CubeX:      pos.X,
		CubeY:      pos.Y,
		CubeVX:     vel.X,
		CubeVY:     vel.Y,
		CubeSize:   c.cube.Size(),
		CubePoint:  c.cube.Point(),
		Life:       actorSnapshot(&c.life.drifter),
		Enemies:    make([]ActorSnapshot, len(c.enemies)),
	}
	for i, e := range c.enemies {
		s.Enemies[i] = actorSnapshot(&e.drifter)
	}
	return s
}

func actorSnapshot(d *drifter) ActorSnapshot {
	return ActorSnapshot{X: d.pos.X, Y: d.pos.Y, VX: d.vel.X, VY: d.vel.Y}
}
