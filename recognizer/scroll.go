package recognizer

import (
	"time"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

// ScrollConfig configures scroll recognition.
type ScrollConfig struct {
	// EndDelay is how long after the last scroll delta the gesture is
	// considered ended.
	EndDelay time.Duration
}

// DefaultScrollConfig returns sensible scroll defaults.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{EndDelay: 150 * time.Millisecond}
}

// Scroll recognizes scroll-position gestures on surfaces that report
// Scroll events. Shape mirrors Wheel: tick callbacks plus a debounced end.
type Scroll struct {
	cfg ScrollConfig
	cb  Callback
}

// NewScroll creates a scroll recognizer.
func NewScroll(cfg ScrollConfig, cb Callback) *Scroll {
	return &Scroll{cfg: cfg, cb: cb}
}

// Slot returns SlotScroll.
func (s *Scroll) Slot() Slot { return SlotScroll }

// Register adds the scroll handler to the binding map.
func (s *Scroll) Register(ctx *Context, bindings *binding.Map) {
	st := ctx.State

	bindings.Add(event.Scroll, func(ev event.Event) {
		if !st.Active {
			st.Reset()
			st.Active = true
			st.Start = ev.Position
			st.StartTime = ev.Time
		}
		st.Delta = event.Position{X: ev.WheelX, Y: ev.WheelY}
		st.Offset.X += ev.WheelX
		st.Offset.Y += ev.WheelY
		st.Count++
		st.Current = ev.Position
		st.Time = ev.Time

		if s.cb != nil {
			s.cb(st, ev)
		}

		ctx.Timers.After(s.cfg.EndDelay, func() {
			st.Active = false
			if s.cb != nil {
				s.cb(st, ev)
			}
		})
	})
}
