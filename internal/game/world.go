package game

import "github.com/vovakirdan/cube-chase/internal/core"

// World is the static playfield background.
type World struct{}

// Draw fills the whole surface with the background color.
func (World) Draw(dst core.Surface) {
	w, h := dst.Bounds()
	dst.FillRect(0, 0, w, h, core.ColorBackground)
}
