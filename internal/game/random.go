package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/core"
)

// rollRange draws a value from r. Quantized ranges behave like an inclusive
// integer draw scaled by Step, so every value Min, Min+Step, ..., Max is
// equally likely.
func rollRange(rng *rand.Rand, r config.Range) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	if r.Step <= 0 {
		return r.Min + rng.Float64()*(r.Max-r.Min)
	}
	n := int(math.Round((r.Max - r.Min) / r.Step))
	return r.Min + float64(rng.Intn(n+1))*r.Step
}

// rollPosition draws an integer position inside the area, edges included.
func rollPosition(rng *rand.Rand, a config.Area) core.Vec {
	return core.Vec{
		X: rollRange(rng, config.Range{Min: a.MinX, Max: a.MaxX, Step: 1}),
		Y: rollRange(rng, config.Range{Min: a.MinY, Max: a.MaxY, Step: 1}),
	}
}
