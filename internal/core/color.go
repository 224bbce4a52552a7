package core

import "image/color"

// Color is a named entry of the game palette.
// Drivers translate it to whatever their backend needs (hex for Lip Gloss,
// RGBA for Ebitengine).
type Color uint8

// Palette entries for game elements.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorCube
	ColorPointBar
	ColorLife
	ColorEnemy
	ColorText
	ColorPanel
)

var palette = map[Color]color.RGBA{
	ColorDefault:    {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	ColorBackground: {R: 0x11, G: 0x11, B: 0x11, A: 0xFF},
	ColorCube:       {R: 0xA7, G: 0xE8, B: 0x55, A: 0xFF},
	ColorPointBar:   {R: 0xFF, G: 0x4A, B: 0xDC, A: 0xFF},
	ColorLife:       {R: 0xFF, G: 0xC9, B: 0x51, A: 0xFF},
	ColorEnemy:      {R: 0xF7, G: 0x33, B: 0x51, A: 0xFF},
	ColorText:       {R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	ColorPanel:      {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
}

// RGBA returns the palette value. Unknown colors map to white.
func (c Color) RGBA() color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[ColorDefault]
}

// Hex returns the color as a "#RRGGBB" string.
func (c Color) Hex() string {
	const digits = "0123456789ABCDEF"
	v := c.RGBA()
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, ch := range []uint8{v.R, v.G, v.B} {
		b[1+i*2] = digits[ch>>4]
		b[2+i*2] = digits[ch&0x0F]
	}
	return string(b)
}

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBackground:
		return "background"
	case ColorCube:
		return "cube"
	case ColorPointBar:
		return "point-bar"
	case ColorLife:
		return "life"
	case ColorEnemy:
		return "enemy"
	case ColorText:
		return "text"
	case ColorPanel:
		return "panel"
	default:
		return "unknown"
	}
}
