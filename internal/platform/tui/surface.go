package tui

import (
	"math"

	"github.com/vovakirdan/cube-chase/internal/core"
)

// blockRune fills rectangles on the terminal.
const blockRune = '█'

// Surface draws the logical 800×600 play space onto a cell screen,
// scaling each axis independently.
type Surface struct {
	screen *core.Screen
}

// NewSurface wraps a screen.
func NewSurface(screen *core.Screen) *Surface {
	return &Surface{screen: screen}
}

// Bounds implements core.Surface.
func (s *Surface) Bounds() (float64, float64) {
	return core.ScreenWidth, core.ScreenHeight
}

func (s *Surface) scale() (sx, sy float64) {
	return float64(s.screen.Width()) / core.ScreenWidth, float64(s.screen.Height()) / core.ScreenHeight
}

// FillRect implements core.Surface. Anything visible covers at least one cell.
func (s *Surface) FillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	sx, sy := s.scale()

	x0 := int(math.Floor(x * sx))
	y0 := int(math.Floor(y * sy))
	x1 := max(int(math.Ceil((x+w)*sx)), x0+1)
	y1 := max(int(math.Ceil((y+h)*sy)), y0+1)

	s.screen.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), blockRune, c)
}

// DrawText implements core.Surface. Text is drawn one rune per cell;
// the size is ignored.
func (s *Surface) DrawText(x, y float64, text string, style core.TextStyle) {
	sx, sy := s.scale()
	col := int(math.Floor(x * sx))
	row := int(math.Floor(y * sy))
	if style.Centered {
		col -= len([]rune(text)) / 2
	}
	s.screen.DrawText(col, row, text, style.Color)
}
