package recognizer

import (
	"time"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

// ClickConfig configures multi-click recognition.
type ClickConfig struct {
	// Interval is the maximum time between clicks in one sequence.
	Interval time.Duration

	// Distance is the maximum Manhattan distance between clicks in one
	// sequence.
	Distance int
}

// DefaultClickConfig returns sensible click defaults.
func DefaultClickConfig() ClickConfig {
	return ClickConfig{
		Interval: 400 * time.Millisecond,
		Distance: 4,
	}
}

// Click counts single, double, and triple clicks. The count wraps back to
// one after three. The callback fires once per sequence, after the
// sequence's debounce timer expires, with Count holding the final tally.
type Click struct {
	cfg ClickConfig
	cb  Callback
}

// NewClick creates a click recognizer.
func NewClick(cfg ClickConfig, cb Callback) *Click {
	return &Click{cfg: cfg, cb: cb}
}

// Slot returns SlotClick.
func (c *Click) Slot() Slot { return SlotClick }

// Register adds the click handler to the binding map.
func (c *Click) Register(ctx *Context, bindings *binding.Map) {
	s := ctx.State

	bindings.Add(event.Click, func(ev event.Event) {
		ts := ev.Time
		if ts.IsZero() {
			ts = time.Now()
		}

		if c.sequenceContinues(s, ev.Position, ts) {
			s.Count++
			if s.Count > 3 {
				s.Count = 1
			}
		} else {
			s.Count = 1
			s.Start = ev.Position
			s.StartTime = ts
		}

		s.Active = true
		s.Current = ev.Position
		s.Time = ts

		ctx.Timers.After(c.cfg.Interval, func() {
			s.Active = false
			if c.cb != nil {
				c.cb(s, ev)
			}
		})
	})
}

// sequenceContinues reports whether a click at pos/ts extends the current
// sequence. A negative elapsed time (clock skew) starts a new sequence.
func (c *Click) sequenceContinues(s *SlotState, pos event.Position, ts time.Time) bool {
	if !s.Active || s.Time.IsZero() {
		return false
	}
	elapsed := ts.Sub(s.Time)
	if elapsed < 0 || elapsed > c.cfg.Interval {
		return false
	}
	return pos.Distance(s.Current) <= c.cfg.Distance
}
