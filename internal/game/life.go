package game

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/core"
)

// Life is the pickup the player chases. Each axis of its velocity is
// rolled independently.
type Life struct {
	drifter
}

// NewLife creates a life and places it away from avoid.
func NewLife(cfg config.ActorConfig, rng *rand.Rand, logger *log.Logger, avoid core.Box) *Life {
	l := &Life{drifter: drifter{
		name:   "life",
		size:   cfg.Size,
		color:  core.ColorLife,
		cfg:    cfg,
		rng:    rng,
		logger: orDiscard(logger),
	}}
	l.respawnVel = func() core.Vec {
		return core.Vec{X: rollRange(rng, cfg.RespawnSpeed), Y: rollRange(rng, cfg.RespawnSpeed)}
	}
	l.resetVel = func() core.Vec {
		return core.Vec{X: rollRange(rng, cfg.ResetSpeed), Y: rollRange(rng, cfg.ResetSpeed)}
	}
	l.Reset(avoid)
	return l
}
