package game

import (
	"github.com/vovakirdan/cube-chase/internal/config"
	"github.com/vovakirdan/cube-chase/internal/core"
)

// Capture is the effect of a collision on the cube.
type Capture struct {
	Size       float64 // New cube size
	PointDelta float64 // Amount added to the point budget
	Applied    bool    // False when the cube was already at its limit
}

// GrowOnLife returns the effect of catching a life. Growth costs points
// equal to the size gained.
func GrowOnLife(size float64, cube config.CubeConfig, capture config.CaptureConfig) Capture {
	if size >= cube.MaxSize {
		return Capture{Size: size}
	}
	return scaleCube(size, capture.GrowFactor, cube)
}

// ShrinkOnEnemy returns the effect of touching an enemy. The size lost is
// credited back to the point budget.
func ShrinkOnEnemy(size float64, cube config.CubeConfig, capture config.CaptureConfig) Capture {
	if size < cube.MinSize {
		return Capture{Size: size}
	}
	return scaleCube(size, capture.ShrinkFactor, cube)
}

// scaleCube multiplies size by factor. The point delta is taken from the
// unclamped step; only the resulting size is held to [MinSize, MaxSize].
func scaleCube(size, factor float64, cube config.CubeConfig) Capture {
	next := size * factor
	return Capture{
		Size:       core.ClampF(next, cube.MinSize, cube.MaxSize),
		PointDelta: -(next - size),
		Applied:    true,
	}
}

// apply updates the cube with a capture result.
func (c *Cube) apply(r Capture) {
	if !r.Applied {
		return
	}
	c.size = r.Size
	c.point += r.PointDelta
}
