package recognizer

import (
	"time"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

// PinchConfig configures pinch (zoom) recognition.
type PinchConfig struct {
	// Step is the scale change per wheel tick.
	Step float64

	// Min and Max clamp the accumulated scale.
	Min float64
	Max float64

	// EndDelay is how long after the last tick the gesture is considered
	// ended.
	EndDelay time.Duration
}

// DefaultPinchConfig returns sensible pinch defaults.
func DefaultPinchConfig() PinchConfig {
	return PinchConfig{
		Step:     0.1,
		Min:      0.25,
		Max:      4.0,
		EndDelay: 150 * time.Millisecond,
	}
}

// Pinch recognizes ctrl+wheel zoom: scroll up zooms in, scroll down zooms
// out. Terminal surfaces have no multitouch, so ctrl+wheel is the pinch
// idiom here. Plain wheel ticks are left to the Wheel recognizer.
type Pinch struct {
	cfg PinchConfig
	cb  Callback
}

// NewPinch creates a pinch recognizer.
func NewPinch(cfg PinchConfig, cb Callback) *Pinch {
	return &Pinch{cfg: cfg, cb: cb}
}

// Slot returns SlotPinch.
func (p *Pinch) Slot() Slot { return SlotPinch }

// Register adds the pinch handler to the binding map.
func (p *Pinch) Register(ctx *Context, bindings *binding.Map) {
	s := ctx.State

	bindings.Add(event.Wheel, func(ev event.Event) {
		if !ev.Modifiers.HasCtrl() && !ev.Modifiers.HasMeta() {
			return
		}
		if !s.Active {
			s.Reset()
			s.Active = true
			s.Scale = 1.0
			s.Start = ev.Position
			s.StartTime = ev.Time
		}
		// Wheel up (negative Y) zooms in.
		s.Scale -= p.cfg.Step * float64(ev.WheelY)
		if s.Scale < p.cfg.Min {
			s.Scale = p.cfg.Min
		}
		if s.Scale > p.cfg.Max {
			s.Scale = p.cfg.Max
		}
		s.Count++
		s.Current = ev.Position
		s.Time = ev.Time

		if p.cb != nil {
			p.cb(s, ev)
		}

		ctx.Timers.After(p.cfg.EndDelay, func() {
			s.Active = false
			if p.cb != nil {
				p.cb(s, ev)
			}
		})
	})
}
