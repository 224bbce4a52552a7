package core

// TextStyle controls how DrawText renders a string.
type TextStyle struct {
	Size     float64 // Nominal font size in logical units
	Color    Color
	Centered bool // When set, (x, y) is the center of the text instead of its top-left
}

// Surface is the drawing capability the game needs from a display backend.
// Coordinates are logical units in the 800×600 play space; implementations
// scale and clip as needed.
type Surface interface {
	// Bounds returns the logical width and height of the surface.
	Bounds() (w, h float64)

	// FillRect fills an axis-aligned rectangle given by its top-left corner.
	FillRect(x, y, w, h float64, c Color)

	// DrawText renders a string.
	DrawText(x, y float64, text string, style TextStyle)
}

// DrawOp is one recorded drawing call.
type DrawOp struct {
	Kind  string // "rect" or "text"
	X, Y  float64
	W, H  float64
	Text  string
	Color Color
	Style TextStyle
}

// RecordingSurface captures drawing calls instead of rendering them.
// Useful for tests and for headless runs.
type RecordingSurface struct {
	W, H float64
	Ops  []DrawOp
}

// NewRecordingSurface creates a recorder with the logical screen size.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{W: ScreenWidth, H: ScreenHeight}
}

// Bounds implements Surface.
func (r *RecordingSurface) Bounds() (float64, float64) {
	return r.W, r.H
}

// FillRect implements Surface.
func (r *RecordingSurface) FillRect(x, y, w, h float64, c Color) {
	r.Ops = append(r.Ops, DrawOp{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

// DrawText implements Surface.
func (r *RecordingSurface) DrawText(x, y float64, text string, style TextStyle) {
	r.Ops = append(r.Ops, DrawOp{Kind: "text", X: x, Y: y, Text: text, Color: style.Color, Style: style})
}

// Reset discards all recorded operations.
func (r *RecordingSurface) Reset() {
	r.Ops = r.Ops[:0]
}

// Texts returns the strings drawn since the last Reset, in order.
func (r *RecordingSurface) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// CountColor returns how many rectangles were filled with c.
func (r *RecordingSurface) CountColor(c Color) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == "rect" && op.Color == c {
			n++
		}
	}
	return n
}
