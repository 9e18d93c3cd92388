package config

import "github.com/dshills/gesturekit/event"

// Ref is a lazy indirection to a target surface. The surface may not
// exist when the controller is constructed; the controller dereferences
// the ref on every bind call.
type Ref struct {
	// Current is the surface the ref currently points at. May be nil.
	Current event.Surface
}

// Config configures a gesture controller. The zero value selects the
// declarative attachment strategy with no window surface.
type Config struct {
	// Target is a concrete surface to attach primary listeners to.
	// Setting Target (or Ref) selects the imperative attachment strategy.
	Target event.Surface

	// Ref is a lazy target indirection; it takes precedence over Target
	// when set.
	Ref *Ref

	// Window is the secondary surface for window-level listener groups.
	// When nil, AddWindowListeners/RemoveWindowListeners are no-ops.
	Window event.Surface

	// Options are dispatch options forwarded verbatim to every attach
	// and detach call.
	Options event.Options

	// Native holds statically-registered handlers merged into the
	// binding map after recognizer contributions, so recognizer handlers
	// always execute first for a shared event name.
	Native map[event.Name][]event.Handler

	// Tuning carries per-gesture thresholds and timeouts.
	Tuning Tuning
}

// HasTarget reports whether the imperative attachment strategy is
// selected. The strategy is fixed by configuration, not by whether the
// ref happens to resolve right now.
func (c *Config) HasTarget() bool {
	return c.Ref != nil || c.Target != nil
}

// ResolveTarget dereferences the target at bind time. Returns nil when a
// ref is configured but does not yet point at a surface.
func (c *Config) ResolveTarget() event.Surface {
	if c.Ref != nil {
		return c.Ref.Current
	}
	return c.Target
}
