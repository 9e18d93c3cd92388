package controller

// Stats is a snapshot of controller activity.
type Stats struct {
	// Binds is the number of bind calls.
	Binds uint64

	// Cleans is the number of clean calls.
	Cleans uint64

	// Dispatches is the number of composed-handler invocations.
	Dispatches uint64

	// PrimaryListeners is the number of listeners currently attached to
	// the target surface.
	PrimaryListeners int

	// WindowGroups is the number of window-listener groups currently
	// registered.
	WindowGroups int

	// PendingTimers is the number of debounce timers currently pending.
	PendingTimers int
}

// Stats returns current controller statistics.
func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Binds:            c.binds.Load(),
		Cleans:           c.cleans.Load(),
		Dispatches:       c.dispatches.Load(),
		PrimaryListeners: len(c.primary),
		WindowGroups:     len(c.windows),
		PendingTimers:    len(c.timers),
	}
}
