// Package controller implements the binding/lifecycle controller at the
// heart of Gesturekit.
//
// A Controller aggregates handler registrations from an ordered set of
// recognizers, merges collisions per event name, and either attaches the
// composed handlers to a target surface (imperative strategy) or returns
// them as a declarative props map for an external rendering system. It
// owns all cross-cutting mutable state: the gesture state snapshot,
// slot-keyed debounce timers, and window-level listener groups — and
// guarantees complete teardown on Clean.
//
// # Lifecycle
//
//	ctrl := controller.New(cfg, recognizer.NewDrag(dragCfg, onDrag))
//	release, err := ctrl.Effect() // bind on mount
//	defer release()               // clean on unmount
//
// Bind may be called any number of times; with the imperative strategy it
// always detaches every currently-attached primary listener before
// re-attaching, because handler identities are recomputed on every bind.
// Clean is idempotent.
//
// # Dispatch model
//
// Handlers composed by the controller and debounce-timer callbacks are
// serialized on an internal mutex, so recognizer state never sees
// concurrent writers even though timer callbacks fire on their own
// goroutine. Handler panics are not caught anywhere on the dispatch path.
package controller
