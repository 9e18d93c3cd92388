package binding

import "github.com/dshills/gesturekit/event"

// Map accumulates handler registrations keyed by event name. Insertion
// order is preserved both across names (first registration wins the
// iteration slot) and within a name (execution order when chained).
//
// Map is not safe for concurrent use; a bind call owns its Map exclusively.
type Map struct {
	order   []event.Name
	entries map[event.Name][]event.Handler
}

// NewMap creates an empty binding map.
func NewMap() *Map {
	return &Map{
		entries: make(map[event.Name][]event.Handler),
	}
}

// Add appends a handler for the named event. Invalid names and nil
// handlers are ignored so recognizers can register unconditionally.
func (m *Map) Add(name event.Name, h event.Handler) {
	if !name.Valid() || h == nil {
		return
	}
	if _, seen := m.entries[name]; !seen {
		m.order = append(m.order, name)
	}
	m.entries[name] = append(m.entries[name], h)
}

// AddAll appends every handler in hs for the named event, in order.
func (m *Map) AddAll(name event.Name, hs []event.Handler) {
	for _, h := range hs {
		m.Add(name, h)
	}
}

// Names returns the registered names in first-insertion order.
func (m *Map) Names() []event.Name {
	out := make([]event.Name, len(m.order))
	copy(out, m.order)
	return out
}

// Handlers returns the ordered handler sequence for a name. The returned
// slice is the map's own backing storage; callers must not mutate it.
func (m *Map) Handlers(name event.Name) []event.Handler {
	return m.entries[name]
}

// Len returns the number of registered names.
func (m *Map) Len() int {
	return len(m.order)
}
