package core

// EventType identifies the kind of input event delivered to the game.
type EventType int

const (
	EventNone    EventType = iota
	EventQuit              // Window closed / session ended
	EventKeyDown           // A key went down
	EventKeyUp             // A key was released
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventNone:
		return "None"
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	default:
		return "Unknown"
	}
}

// Key is a backend-independent key code.
// Drivers translate their native key representation to these values.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyR
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEscape:
		return "Escape"
	case KeyR:
		return "R"
	default:
		return "Unknown"
	}
}

// Event is a single discrete input event for one frame.
// Key is KeyNone for events that are not keyboard related.
type Event struct {
	Type EventType
	Key  Key
}

// QuitEvent returns a window-close event.
func QuitEvent() Event {
	return Event{Type: EventQuit}
}

// KeyDownEvent returns a key press event.
func KeyDownEvent(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// KeyUpEvent returns a key release event.
func KeyUpEvent(k Key) Event {
	return Event{Type: EventKeyUp, Key: k}
}

// String formats the event for debug logging.
func (e Event) String() string {
	if e.Key == KeyNone {
		return e.Type.String()
	}
	return e.Type.String() + "(" + e.Key.String() + ")"
}
