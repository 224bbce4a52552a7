package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/cube-chase/internal/core"
)

var keymap = map[ebiten.Key]core.Key{
	ebiten.KeyArrowUp:    core.KeyUp,
	ebiten.KeyArrowDown:  core.KeyDown,
	ebiten.KeyArrowLeft:  core.KeyLeft,
	ebiten.KeyArrowRight: core.KeyRight,
	ebiten.KeyEscape:     core.KeyEscape,
	ebiten.KeyR:          core.KeyR,
}

// translate converts this tick's key transitions to game events:
// presses first, then releases, then the window close request.
func translate(pressed, released []ebiten.Key, closing bool) []core.Event {
	var events []core.Event
	for _, k := range pressed {
		if key, ok := keymap[k]; ok {
			events = append(events, core.KeyDownEvent(key))
		}
	}
	for _, k := range released {
		if key, ok := keymap[k]; ok {
			events = append(events, core.KeyUpEvent(key))
		}
	}
	if closing {
		events = append(events, core.QuitEvent())
	}
	return events
}
