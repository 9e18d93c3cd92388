package terminal

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/gesturekit/event"
)

// Rect is a rectangular screen region in cell coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains returns true if the position falls inside the rectangle.
func (r Rect) Contains(p event.Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Surface is a screen region that holds event listeners. It implements
// event.Surface. Dispatch runs capture-phase listeners before
// bubble-phase listeners, each phase in attachment order.
type Surface struct {
	mu        sync.Mutex
	bounds    Rect
	unbounded bool
	listeners map[event.Name][]entry
	order     uint64
}

type entry struct {
	id      event.ListenerID
	h       event.Handler
	capture bool
	seq     uint64
}

// NewSurface creates a surface covering the given region.
func NewSurface(bounds Rect) *Surface {
	return &Surface{
		bounds:    bounds,
		listeners: make(map[event.Name][]entry),
	}
}

// NewWindow creates an unbounded surface. Window surfaces receive the
// events the router could not deliver to a target region.
func NewWindow() *Surface {
	return &Surface{
		unbounded: true,
		listeners: make(map[event.Name][]entry),
	}
}

// Bounds returns the surface's current region.
func (s *Surface) Bounds() Rect {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bounds
}

// SetBounds moves or resizes the surface.
func (s *Surface) SetBounds(bounds Rect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bounds = bounds
}

// Contains returns true if the position falls inside the surface.
// Unbounded surfaces contain every position.
func (s *Surface) Contains(p event.Position) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unbounded || s.bounds.Contains(p)
}

// AddListener attaches a handler for the named event.
func (s *Surface) AddListener(name event.Name, h event.Handler, opts event.Options) event.ListenerID {
	if !name.Valid() || h == nil {
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.order++
	id := event.ListenerID(uuid.NewString())
	s.listeners[name] = append(s.listeners[name], entry{
		id:      id,
		h:       h,
		capture: opts.Capture,
		seq:     s.order,
	})
	return id
}

// RemoveListener detaches a previously attached listener. Unknown IDs
// are ignored.
func (s *Surface) RemoveListener(id event.ListenerID) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for name, entries := range s.listeners {
		for i, e := range entries {
			if e.id == id {
				s.listeners[name] = append(entries[:i:i], entries[i+1:]...)
				if len(s.listeners[name]) == 0 {
					delete(s.listeners, name)
				}
				return
			}
		}
	}
}

// ListenerCount returns the number of attached listeners.
func (s *Surface) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, entries := range s.listeners {
		n += len(entries)
	}
	return n
}

// Dispatch delivers an event to every listener attached for its name.
// The listener table is snapshotted first so handlers may add or remove
// listeners on this surface during dispatch.
func (s *Surface) Dispatch(ev event.Event) {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Time.IsZero() {
		ev.Time = time.Now()
	}

	s.mu.Lock()
	entries := s.listeners[ev.Name]
	var capture, bubble []event.Handler
	for _, e := range entries {
		if e.capture {
			capture = append(capture, e.h)
		} else {
			bubble = append(bubble, e.h)
		}
	}
	s.mu.Unlock()

	for _, h := range capture {
		h(ev)
	}
	for _, h := range bubble {
		h(ev)
	}
}
