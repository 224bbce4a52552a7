package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/cube-chase/internal/core"
)

// face is the only font; it is scaled to the requested size.
var face font.Face = basicfont.Face7x13

// faceHeight is the nominal pixel height of face.
const faceHeight = 13

// surface draws onto an Ebitengine image laid out at the logical size.
type surface struct {
	dst *ebiten.Image
}

// Bounds implements core.Surface.
func (s surface) Bounds() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect implements core.Surface.
func (s surface) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c.RGBA(), false)
}

// DrawText implements core.Surface.
func (s surface) DrawText(x, y float64, str string, style core.TextStyle) {
	b := text.BoundString(face, str)
	scale := 1.0
	if style.Size > 0 {
		scale = style.Size / faceHeight
	}

	op := &ebiten.DrawImageOptions{}
	// Move the glyph box to the origin, then anchor it at (x, y)
	op.GeoM.Translate(float64(-b.Min.X), float64(-b.Min.Y))
	if style.Centered {
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(style.Color.RGBA())

	text.DrawWithOptions(s.dst, str, face, op)
}
