package event

import "time"

// Position represents a surface coordinate.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Distance returns the Manhattan distance (|dx| + |dy|) between two
// positions. Manhattan distance is used for proximity thresholds as it is
// cheap and close enough for cell-grid coordinates.
func (p Position) Distance(other Position) int {
	dx := p.X - other.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - other.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Buttons is a bitmask of pointer buttons held during an event.
type Buttons uint8

const (
	// ButtonPrimary is the primary (left) pointer button.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary (right) pointer button.
	ButtonSecondary
	// ButtonMiddle is the middle pointer button.
	ButtonMiddle
)

// Has returns true if every button in mask is held.
func (b Buttons) Has(mask Buttons) bool { return b&mask == mask }

// Modifier is a bitmask of keyboard modifiers held during an event.
type Modifier uint8

const (
	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Control key.
	ModCtrl
	// ModAlt indicates the Alt key.
	ModAlt
	// ModMeta indicates the Meta/Super key.
	ModMeta
)

// HasShift returns true if Shift is held.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }

// HasCtrl returns true if Control is held.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt returns true if Alt is held.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasMeta returns true if Meta is held.
func (m Modifier) HasMeta() bool { return m&ModMeta != 0 }

// Event is the payload delivered to every handler in a chain. All handlers
// composed for one dispatch receive the same Event value.
type Event struct {
	// Name is the event's native name.
	Name Name

	// ID uniquely identifies the dispatch (assigned by the surface).
	ID string

	// Position is the pointer position in surface coordinates.
	Position Position

	// Buttons are the pointer buttons held when the event fired.
	Buttons Buttons

	// Modifiers are the keyboard modifiers held when the event fired.
	Modifiers Modifier

	// WheelX and WheelY are wheel tick deltas for Wheel and Scroll events.
	WheelX int
	WheelY int

	// Key is the rune for KeyDown/KeyUp events.
	Key rune

	// Time is when the event occurred.
	Time time.Time
}

// Handler processes a single dispatched event. Handlers do not return
// values; a fault (panic) propagates to the dispatch caller.
type Handler func(Event)

// Listener pairs an event name with a handler. Window-level listener
// groups are expressed as ordered Listener slices.
type Listener struct {
	Name    Name
	Handler Handler
}
