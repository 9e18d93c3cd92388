package recognizer

import (
	"time"

	"github.com/dshills/gesturekit/event"
)

// Shared holds cross-gesture pointer state, updated on every dispatch.
type Shared struct {
	// Position is the last observed pointer position.
	Position event.Position

	// Buttons are the buttons held at the last dispatch.
	Buttons event.Buttons

	// Modifiers are the modifiers held at the last dispatch.
	Modifiers event.Modifier
}

// SlotState is the mutable state of one gesture slot.
type SlotState struct {
	// Active indicates the gesture is in progress.
	Active bool

	// Intentional indicates the gesture crossed its intent threshold.
	Intentional bool

	// Start is the position where the gesture began.
	Start event.Position

	// Current is the most recent position.
	Current event.Position

	// Delta is the movement since the previous event of the gesture.
	Delta event.Position

	// Offset is the accumulated movement since the gesture began.
	Offset event.Position

	// Count is a gesture-specific counter (click count, wheel ticks).
	Count int

	// Scale is the accumulated zoom factor for pinch-style gestures.
	Scale float64

	// StartTime is when the gesture began.
	StartTime time.Time

	// Time is when the slot last advanced.
	Time time.Time

	// Values holds recognizer-defined extras (used by scripted
	// recognizers). Lazily allocated by Set.
	Values map[string]any
}

// Reset returns the slot to its zero state.
func (s *SlotState) Reset() {
	*s = SlotState{}
}

// Set stores a recognizer-defined extra value.
func (s *SlotState) Set(key string, v any) {
	if s.Values == nil {
		s.Values = make(map[string]any)
	}
	s.Values[key] = v
}

// Get retrieves a recognizer-defined extra value.
func (s *SlotState) Get(key string) (any, bool) {
	v, ok := s.Values[key]
	return v, ok
}

// State is the gesture state snapshot shared across recognizer invocations.
// It is owned by the controller; recognizers receive only their own slot.
type State struct {
	// Shared is the cross-gesture pointer state.
	Shared Shared

	slots map[Slot]*SlotState
}

// NewState creates an empty state snapshot.
func NewState() *State {
	return &State{slots: make(map[Slot]*SlotState)}
}

// Slot returns the state for a slot, creating it on first use. The
// returned pointer is stable across bind calls so handler closures from
// successive binds observe the same state.
func (s *State) Slot(k Slot) *SlotState {
	ss, ok := s.slots[k]
	if !ok {
		ss = &SlotState{}
		s.slots[k] = ss
	}
	return ss
}

// Slots returns the slot keys currently materialized.
func (s *State) Slots() []Slot {
	out := make([]Slot, 0, len(s.slots))
	for k := range s.slots {
		out = append(out, k)
	}
	return out
}

// Reset zeroes every materialized slot and the shared state.
func (s *State) Reset() {
	s.Shared = Shared{}
	for _, ss := range s.slots {
		ss.Reset()
	}
}
