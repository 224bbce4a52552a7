package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/core"
)

// Enemy is a hazard. All enemies of a session move diagonally with the
// session's shared speed.
type Enemy struct {
	drifter
	session *Session
}

// NewEnemy creates an enemy bound to a session and places it away from avoid.
func NewEnemy(cfg config.ActorConfig, session *Session, rng *rand.Rand, logger *log.Logger, avoid core.Box) *Enemy {
	e := &Enemy{
		drifter: drifter{
			name:   "enemy",
			size:   cfg.Size,
			color:  core.ColorEnemy,
			cfg:    cfg,
			rng:    rng,
			logger: orDiscard(logger),
		},
		session: session,
	}
	e.respawnVel = e.sessionVel
	e.resetVel = e.sessionVel
	e.Reset(avoid)
	return e
}

func (e *Enemy) sessionVel() core.Vec {
	return core.Vec{X: e.session.EnemySpeed, Y: e.session.EnemySpeed}
}
