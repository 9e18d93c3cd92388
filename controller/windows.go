package controller

import (
	"github.com/dshills/gesturekit/event"
	"github.com/dshills/gesturekit/recognizer"
)

// AddWindowListeners attaches a listener group to the configured window
// surface and records it under the slot key. Registration and attachment
// are atomic. Any prior group for the slot is detached first, so repeated
// registration for one slot cannot leak listeners. A silent no-op when no
// window surface is configured, so recognizers may call unconditionally.
func (c *Controller) AddWindowListeners(slot recognizer.Slot, listeners []event.Listener) {
	w := c.cfg.Window
	if w == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeWindowLocked(slot)

	atts := make([]attachment, 0, len(listeners))
	for _, l := range listeners {
		if !l.Name.Valid() || l.Handler == nil {
			continue
		}
		id := w.AddListener(l.Name, c.wrap(l.Handler), c.cfg.Options)
		atts = append(atts, attachment{name: l.Name, id: id, surface: w})
	}
	if len(atts) > 0 {
		c.windows[slot] = atts
	}
}

// RemoveWindowListeners detaches the listener group recorded under the
// slot key and deletes the entry. Removing an absent slot, or calling
// without a configured window surface, is a no-op.
func (c *Controller) RemoveWindowListeners(slot recognizer.Slot) {
	if c.cfg.Window == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeWindowLocked(slot)
}

// removeWindowLocked detaches and unregisters one slot's group.
// Caller holds mu.
func (c *Controller) removeWindowLocked(slot recognizer.Slot) {
	for _, att := range c.windows[slot] {
		att.surface.RemoveListener(att.id)
	}
	delete(c.windows, slot)
}

// slotWindows scopes the window registry to one recognizer's slot.
type slotWindows struct {
	c    *Controller
	slot recognizer.Slot
}

func (w slotWindows) Add(listeners []event.Listener) {
	w.c.AddWindowListeners(w.slot, listeners)
}

func (w slotWindows) Remove() {
	w.c.RemoveWindowListeners(w.slot)
}
