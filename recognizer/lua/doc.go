// Package lua runs user-supplied Lua scripts as gesture recognizers.
//
// A script returns a table describing the recognizer:
//
//	return {
//	    slot = "tripletap",
//	    events = {"pointerdown", "pointerup"},
//	    on_event = function(state, ev)
//	        state.count = (state.count or 0) + 1
//	    end,
//	}
//
// on_event receives the slot's gesture state as a table and the event
// being dispatched. Fields written to the state table persist across
// events; the well-known fields active, intentional, count, and scale
// are mirrored back into the slot's gesture state where built-in
// recognizers and callbacks can see them.
//
// Scripts run in a sandboxed interpreter with only the base, table,
// string, and math libraries. A Lua runtime error during dispatch
// panics, matching how faults in Go handlers surface.
package lua
