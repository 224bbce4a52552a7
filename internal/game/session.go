package game

import (
	"math/rand"

	"github.com/vovakirdan/cube-chase/internal/config"
)

// Session holds values fixed for the lifetime of a controller.
// It is created once and shared read-only by every enemy.
type Session struct {
	// EnemySpeed is the diagonal speed every enemy takes on each reset.
	// It is rolled once and survives restarts.
	EnemySpeed float64
}

// NewSession rolls the session values.
func NewSession(rng *rand.Rand, cfg config.EnemyConfig) Session {
	return Session{EnemySpeed: rollRange(rng, cfg.SessionSpeed)}
}
