package recognizer

import (
	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

// Hover tracks pointer presence over the target surface via enter/leave
// events. No configuration and no timers.
type Hover struct {
	cb Callback
}

// NewHover creates a hover recognizer.
func NewHover(cb Callback) *Hover {
	return &Hover{cb: cb}
}

// Slot returns SlotHover.
func (h *Hover) Slot() Slot { return SlotHover }

// Register adds the enter/leave handlers to the binding map.
func (h *Hover) Register(ctx *Context, bindings *binding.Map) {
	s := ctx.State

	bindings.Add(event.PointerEnter, func(ev event.Event) {
		s.Active = true
		s.Start = ev.Position
		s.Current = ev.Position
		s.StartTime = ev.Time
		s.Time = ev.Time
		if h.cb != nil {
			h.cb(s, ev)
		}
	})

	bindings.Add(event.PointerLeave, func(ev event.Event) {
		if !s.Active {
			return
		}
		s.Active = false
		s.Current = ev.Position
		s.Time = ev.Time
		if h.cb != nil {
			h.cb(s, ev)
		}
	})
}
