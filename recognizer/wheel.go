package recognizer

import (
	"time"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

// WheelConfig configures wheel recognition.
type WheelConfig struct {
	// EndDelay is how long after the last tick the gesture is considered
	// ended. Wheel devices deliver no release event, so the end is
	// synthesized with a debounce timer.
	EndDelay time.Duration
}

// DefaultWheelConfig returns sensible wheel defaults.
func DefaultWheelConfig() WheelConfig {
	return WheelConfig{EndDelay: 150 * time.Millisecond}
}

// Wheel recognizes wheel gestures: the first tick starts the gesture, each
// tick accumulates into Offset and increments Count, and the debounce
// timer ends it. The callback fires on every tick and once more when the
// gesture ends (Active false).
type Wheel struct {
	cfg WheelConfig
	cb  Callback
}

// NewWheel creates a wheel recognizer.
func NewWheel(cfg WheelConfig, cb Callback) *Wheel {
	return &Wheel{cfg: cfg, cb: cb}
}

// Slot returns SlotWheel.
func (w *Wheel) Slot() Slot { return SlotWheel }

// Register adds the wheel handler to the binding map.
func (w *Wheel) Register(ctx *Context, bindings *binding.Map) {
	s := ctx.State

	bindings.Add(event.Wheel, func(ev event.Event) {
		if !s.Active {
			s.Reset()
			s.Active = true
			s.Start = ev.Position
			s.StartTime = ev.Time
		}
		s.Delta = event.Position{X: ev.WheelX, Y: ev.WheelY}
		s.Offset.X += ev.WheelX
		s.Offset.Y += ev.WheelY
		s.Count++
		s.Current = ev.Position
		s.Time = ev.Time

		if w.cb != nil {
			w.cb(s, ev)
		}

		ctx.Timers.After(w.cfg.EndDelay, func() {
			s.Active = false
			if w.cb != nil {
				w.cb(s, ev)
			}
		})
	})
}
