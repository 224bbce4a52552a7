package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cube-chase/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game key.
// Returns the key (may be KeyNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (key core.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.KeyNone, true
	case "w", "up":
		return core.KeyUp, false
	case "s", "down":
		return core.KeyDown, false
	case "a", "left":
		return core.KeyLeft, false
	case "d", "right":
		return core.KeyRight, false
	case "esc":
		return core.KeyEscape, false
	case "r":
		return core.KeyR, false
	}

	return core.KeyNone, false
}

// HoldTracker turns repeated key presses into held keys. Terminals report
// a key again while it auto-repeats but never report the release, so a
// held key is released after it goes unreported for releaseTicks ticks.
type HoldTracker struct {
	releaseTicks int
	idle         map[core.Key]int // Ticks since each held key was last seen
}

// NewHoldTracker creates a tracker. Values below 1 are treated as 1.
func NewHoldTracker(releaseTicks int) *HoldTracker {
	if releaseTicks < 1 {
		releaseTicks = 1
	}
	return &HoldTracker{
		releaseTicks: releaseTicks,
		idle:         make(map[core.Key]int),
	}
}

// Press records a key report. Returns a key-down event only when the key
// was not already held; repeats just keep it held.
func (h *HoldTracker) Press(k core.Key) []core.Event {
	_, held := h.idle[k]
	h.idle[k] = 0
	if held {
		return nil
	}
	return []core.Event{core.KeyDownEvent(k)}
}

// Tick advances the tracker by one tick and returns key-up events for
// keys that timed out, in key order.
func (h *HoldTracker) Tick() []core.Event {
	var out []core.Event
	for _, k := range []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight} {
		n, held := h.idle[k]
		if !held {
			continue
		}
		n++
		if n >= h.releaseTicks {
			delete(h.idle, k)
			out = append(out, core.KeyUpEvent(k))
			continue
		}
		h.idle[k] = n
	}
	return out
}

// Held reports whether k is currently held.
func (h *HoldTracker) Held(k core.Key) bool {
	_, held := h.idle[k]
	return held
}

// isBooster reports whether k is tracked as a held key. Other keys are
// one-shot commands.
func isBooster(k core.Key) bool {
	switch k {
	case core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight:
		return true
	}
	return false
}
