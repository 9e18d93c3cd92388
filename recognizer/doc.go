// Package recognizer defines the gesture recognizer contract and the
// built-in recognizers that ship with Gesturekit.
//
// A Recognizer contributes event bindings for exactly one gesture type.
// The controller holds an ordered collection of recognizers, fixed at
// construction, and on every bind asks each to register its handlers into
// a shared binding map. Registration order determines execution order for
// handlers that share an event name.
//
// # Context
//
// A recognizer never sees the controller. Register receives a Context
// carrying exactly the state the recognizer owns: its slot's mutable
// SlotState, a slot-scoped debounce timer facade, and the window-listener
// facade for attaching continuation listeners to the secondary surface.
// This keeps the ownership boundary explicit and lets a recognizer be unit
// tested against fakes.
//
// # Built-ins
//
//	Drag   - press/move/release with window continuation and intent threshold
//	Click  - single/double/triple click counting with a debounced finalizer
//	Wheel  - wheel ticks with a debounced gesture end
//	Scroll - scroll deltas with a debounced gesture end
//	Move   - pointer movement (no buttons) with a debounced gesture end
//	Hover  - enter/leave tracking
//	Pinch  - ctrl+wheel zoom factor
package recognizer
