package controller

import (
	"time"

	"github.com/dshills/gesturekit/recognizer"
)

// After schedules a debounce callback for a slot, replacing any pending
// timer for the same slot. The callback runs serialized with handler
// dispatch.
func (c *Controller) After(slot recognizer.Slot, d time.Duration, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tm, ok := c.timers[slot]; ok {
		tm.Stop()
	}

	var tm *time.Timer
	tm = time.AfterFunc(d, func() {
		c.mu.Lock()
		// A later After may have replaced this timer; only the current
		// owner clears the slot.
		if c.timers[slot] == tm {
			delete(c.timers, slot)
		}
		c.mu.Unlock()

		c.runMu.Lock()
		defer c.runMu.Unlock()
		fn()
	})
	c.timers[slot] = tm
}

// Cancel stops and clears the pending timer for a slot, if any.
func (c *Controller) Cancel(slot recognizer.Slot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tm, ok := c.timers[slot]; ok {
		tm.Stop()
		delete(c.timers, slot)
	}
}

// slotTimers scopes the timer map to one recognizer's slot.
type slotTimers struct {
	c    *Controller
	slot recognizer.Slot
}

func (t slotTimers) After(d time.Duration, fn func()) {
	t.c.After(t.slot, d, fn)
}

func (t slotTimers) Cancel() {
	t.c.Cancel(t.slot)
}
