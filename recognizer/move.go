package recognizer

import (
	"time"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

// MoveConfig configures move recognition.
type MoveConfig struct {
	// EndDelay is how long after the last movement the gesture is
	// considered ended.
	EndDelay time.Duration
}

// DefaultMoveConfig returns sensible move defaults.
func DefaultMoveConfig() MoveConfig {
	return MoveConfig{EndDelay: 100 * time.Millisecond}
}

// Move recognizes free pointer movement (no buttons held). Movement with a
// button held belongs to Drag and is ignored here.
type Move struct {
	cfg MoveConfig
	cb  Callback
}

// NewMove creates a move recognizer.
func NewMove(cfg MoveConfig, cb Callback) *Move {
	return &Move{cfg: cfg, cb: cb}
}

// Slot returns SlotMove.
func (m *Move) Slot() Slot { return SlotMove }

// Register adds the move handler to the binding map.
func (m *Move) Register(ctx *Context, bindings *binding.Map) {
	s := ctx.State

	bindings.Add(event.PointerMove, func(ev event.Event) {
		if ev.Buttons != 0 {
			return
		}
		if !s.Active {
			s.Reset()
			s.Active = true
			s.Start = ev.Position
			s.StartTime = ev.Time
		}
		s.Delta = event.Position{X: ev.Position.X - s.Current.X, Y: ev.Position.Y - s.Current.Y}
		s.Current = ev.Position
		s.Offset = event.Position{X: s.Current.X - s.Start.X, Y: s.Current.Y - s.Start.Y}
		s.Time = ev.Time

		if m.cb != nil {
			m.cb(s, ev)
		}

		ctx.Timers.After(m.cfg.EndDelay, func() {
			s.Active = false
			if m.cb != nil {
				m.cb(s, ev)
			}
		})
	})
}
