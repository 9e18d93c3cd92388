package terminal

import (
	"sync"

	"github.com/dshills/gesturekit/event"
)

// Router delivers pointer events to surfaces. Each event goes to
// exactly one surface: the first target region containing the pointer,
// or the window surface when no target does. Crossing a target's bounds
// synthesizes PointerEnter and PointerLeave; a press and release inside
// the same target synthesizes Click after the PointerUp.
type Router struct {
	mu      sync.Mutex
	window  *Surface
	targets []*Surface
	over    *Surface
	pressIn *Surface
}

// NewRouter creates a router over the given window and target surfaces.
// Targets are matched in order, so overlapping regions resolve to the
// earliest one.
func NewRouter(window *Surface, targets ...*Surface) *Router {
	return &Router{
		window:  window,
		targets: targets,
	}
}

// AddTarget appends a target region.
func (r *Router) AddTarget(s *Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets = append(r.targets, s)
}

// RemoveTarget detaches a target region from routing. Its listeners are
// left in place.
func (r *Router) RemoveTarget(s *Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.targets {
		if t == s {
			r.targets = append(r.targets[:i:i], r.targets[i+1:]...)
			break
		}
	}
	if r.over == s {
		r.over = nil
	}
	if r.pressIn == s {
		r.pressIn = nil
	}
}

// Route delivers one pointer event.
func (r *Router) Route(ev event.Event) {
	r.mu.Lock()

	dst := r.hitLocked(ev.Position)

	// r.over is the target the pointer was last inside, nil when over
	// the window. A change of target produces leave then enter.
	var leave, enter *Surface
	cur := dst
	if cur == r.window {
		cur = nil
	}
	if cur != r.over {
		leave = r.over
		enter = cur
		r.over = cur
	}

	var click *Surface
	switch ev.Name {
	case event.PointerDown:
		if dst != r.window {
			r.pressIn = dst
		} else {
			r.pressIn = nil
		}
	case event.PointerUp:
		if r.pressIn != nil && r.pressIn == dst {
			click = dst
		}
		r.pressIn = nil
	case event.PointerCancel:
		r.pressIn = nil
	}

	r.mu.Unlock()

	if leave != nil {
		lv := ev
		lv.Name = event.PointerLeave
		leave.Dispatch(lv)
	}
	if enter != nil {
		en := ev
		en.Name = event.PointerEnter
		enter.Dispatch(en)
	}

	dst.Dispatch(ev)

	if click != nil {
		cl := ev
		cl.Name = event.Click
		click.Dispatch(cl)
	}
}

// RouteAll delivers a batch of translated events in order.
func (r *Router) RouteAll(evs []event.Event) {
	for _, ev := range evs {
		r.Route(ev)
	}
}

// hitLocked returns the surface a position resolves to.
func (r *Router) hitLocked(p event.Position) *Surface {
	for _, t := range r.targets {
		if t.Contains(p) {
			return t
		}
	}
	return r.window
}
