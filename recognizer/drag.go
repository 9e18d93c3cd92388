package recognizer

import (
	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

// DragConfig configures drag recognition.
type DragConfig struct {
	// Threshold is the Manhattan distance the pointer must travel before
	// the drag is considered intentional. Zero means every press starts
	// an intentional drag immediately.
	Threshold int

	// Button restricts which button starts a drag. Zero means any.
	Button event.Buttons
}

// DefaultDragConfig returns sensible drag defaults.
func DefaultDragConfig() DragConfig {
	return DragConfig{
		Threshold: 0,
		Button:    event.ButtonPrimary,
	}
}

// Drag recognizes press-move-release sequences. On press it registers a
// window-listener group for its slot so the gesture continues when the
// pointer leaves the target bounds; release or cancel removes the group.
type Drag struct {
	cfg DragConfig
	cb  Callback
}

// NewDrag creates a drag recognizer.
func NewDrag(cfg DragConfig, cb Callback) *Drag {
	return &Drag{cfg: cfg, cb: cb}
}

// Slot returns SlotDrag.
func (d *Drag) Slot() Slot { return SlotDrag }

// Register adds the drag handlers to the binding map. Move and release
// handlers are registered both on the primary map and, per press, as a
// window group; hosts route each dispatch to exactly one surface.
func (d *Drag) Register(ctx *Context, bindings *binding.Map) {
	s := ctx.State

	move := func(ev event.Event) {
		if !s.Active {
			return
		}
		s.Delta = event.Position{X: ev.Position.X - s.Current.X, Y: ev.Position.Y - s.Current.Y}
		s.Current = ev.Position
		s.Offset = event.Position{X: s.Current.X - s.Start.X, Y: s.Current.Y - s.Start.Y}
		s.Time = ev.Time
		if !s.Intentional && s.Start.Distance(s.Current) >= d.cfg.Threshold {
			s.Intentional = true
		}
		if s.Intentional {
			d.emit(s, ev)
		}
	}

	up := func(ev event.Event) {
		if !s.Active {
			return
		}
		s.Current = ev.Position
		s.Offset = event.Position{X: s.Current.X - s.Start.X, Y: s.Current.Y - s.Start.Y}
		s.Time = ev.Time
		s.Active = false
		was := s.Intentional
		ctx.Windows.Remove()
		if was {
			d.emit(s, ev)
		}
	}

	down := func(ev event.Event) {
		if s.Active {
			return
		}
		if d.cfg.Button != 0 && !ev.Buttons.Has(d.cfg.Button) {
			return
		}
		s.Reset()
		s.Active = true
		s.Start = ev.Position
		s.Current = ev.Position
		s.StartTime = ev.Time
		s.Time = ev.Time
		s.Intentional = d.cfg.Threshold == 0
		ctx.Windows.Add([]event.Listener{
			{Name: event.PointerMove, Handler: move},
			{Name: event.PointerUp, Handler: up},
			{Name: event.PointerCancel, Handler: up},
		})
		if s.Intentional {
			d.emit(s, ev)
		}
	}

	bindings.Add(event.PointerDown, down)
	bindings.Add(event.PointerMove, move)
	bindings.Add(event.PointerUp, up)
	bindings.Add(event.PointerCancel, up)
}

func (d *Drag) emit(s *SlotState, ev event.Event) {
	if d.cb != nil {
		d.cb(s, ev)
	}
}
