package recognizer

import (
	"time"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

// Slot names a gesture state slot. Timers and window-listener groups are
// keyed by Slot, so one recognizer's debounce or continuation listeners can
// never clobber another's.
type Slot string

const (
	// SlotDrag is the drag recognizer's slot.
	SlotDrag Slot = "drag"
	// SlotClick is the click recognizer's slot.
	SlotClick Slot = "click"
	// SlotWheel is the wheel recognizer's slot.
	SlotWheel Slot = "wheel"
	// SlotScroll is the scroll recognizer's slot.
	SlotScroll Slot = "scroll"
	// SlotMove is the move recognizer's slot.
	SlotMove Slot = "move"
	// SlotHover is the hover recognizer's slot.
	SlotHover Slot = "hover"
	// SlotPinch is the pinch recognizer's slot.
	SlotPinch Slot = "pinch"
)

// Timers schedules the debounce timer for one slot. After replaces any
// pending timer for the slot; Cancel stops and clears it.
type Timers interface {
	After(d time.Duration, fn func())
	Cancel()
}

// Windows manages the window-listener group for one slot on the secondary
// surface. Both operations are silent no-ops when no secondary surface is
// configured, so recognizers may call them unconditionally.
type Windows interface {
	Add(listeners []event.Listener)
	Remove()
}

// Context carries the state slices a recognizer owns during a bind call.
type Context struct {
	// State is the recognizer's mutable slot state.
	State *SlotState

	// Timers is the slot-scoped debounce timer facade.
	Timers Timers

	// Windows is the slot-scoped window-listener facade.
	Windows Windows

	// Args are the raw arguments passed to the bind call.
	Args []any
}

// Recognizer contributes event bindings for one gesture type.
type Recognizer interface {
	// Slot returns the gesture state slot this recognizer owns.
	Slot() Slot

	// Register appends the recognizer's handlers to the binding map.
	// The Context remains valid for the lifetime of the registered
	// handlers; they typically close over it.
	Register(ctx *Context, bindings *binding.Map)
}

// Callback is invoked by built-in recognizers whenever their slot state
// advances. The SlotState pointer is live shared state; callbacks that
// retain it must copy what they need.
type Callback func(s *SlotState, ev event.Event)
