package controller

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/config"
	"github.com/dshills/gesturekit/event"
	"github.com/dshills/gesturekit/recognizer"
)

// attachment records one listener currently attached to a surface. The
// surface is kept alongside the ID because a lazy target ref may resolve
// to a different surface between binds.
type attachment struct {
	name    event.Name
	id      event.ListenerID
	surface event.Surface
}

// Controller is the long-lived orchestrator for one attachment point.
type Controller struct {
	// mu guards primary, windows, and timers.
	mu sync.Mutex

	// runMu serializes handler dispatch and timer callbacks so recognizer
	// state has exactly one writer at a time.
	runMu sync.Mutex

	cfg   config.Config
	recs  []recognizer.Recognizer
	state *recognizer.State

	primary []attachment
	windows map[recognizer.Slot][]attachment
	timers  map[recognizer.Slot]*time.Timer

	binds      atomic.Uint64
	cleans     atomic.Uint64
	dispatches atomic.Uint64
}

// New creates a controller for the given configuration and recognizers.
// The recognizer set and its order are fixed for the controller's
// lifetime; order determines execution order for handlers that share an
// event name.
func New(cfg config.Config, recs ...recognizer.Recognizer) *Controller {
	return &Controller{
		cfg:     cfg,
		recs:    recs,
		state:   recognizer.NewState(),
		windows: make(map[recognizer.Slot][]attachment),
		timers:  make(map[recognizer.Slot]*time.Timer),
	}
}

// State returns the shared gesture state snapshot. The snapshot is
// mutated during dispatch; read it from handler callbacks or after
// serializing with the host's event delivery.
func (c *Controller) State() *recognizer.State {
	return c.state
}

// Bind rebuilds the binding map and applies the active attachment
// strategy. With a target configured (imperative strategy) it detaches
// every currently-attached primary listener, attaches the freshly
// composed handlers, and returns a nil props map. Without a target
// (declarative strategy) it attaches nothing and returns the composed
// props map; the call is pure and may be repeated without accumulation.
//
// The args are forwarded to every recognizer's registration context.
func (c *Controller) Bind(args ...any) (event.Props, error) {
	m := c.buildMap(args)
	c.binds.Add(1)

	if c.cfg.HasTarget() {
		target := c.cfg.ResolveTarget()
		if target == nil {
			return nil, ErrNoTarget
		}
		c.attach(target, m)
		return nil, nil
	}
	return c.compose(m), nil
}

// Effect establishes the mount/unmount contract with the host lifecycle:
// it binds when the imperative strategy is configured and always returns
// the release function the host must invoke on unmount.
func (c *Controller) Effect() (release func(), err error) {
	if c.cfg.HasTarget() {
		if _, err := c.Bind(); err != nil {
			return nil, err
		}
	}
	return c.Clean, nil
}

// Clean detaches every primary listener, stops and clears every pending
// timer, and removes every window-listener group. Clean is idempotent: a
// second call finds empty collections and performs no side effects.
func (c *Controller) Clean() {
	c.cleans.Add(1)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, att := range c.primary {
		att.surface.RemoveListener(att.id)
	}
	c.primary = nil

	for slot, tm := range c.timers {
		tm.Stop()
		delete(c.timers, slot)
	}

	for slot := range c.windows {
		c.removeWindowLocked(slot)
	}
}

// buildMap runs every recognizer's registration in set order, then
// appends the configured native-ref handlers with the same
// append-by-name rule, so recognizer handlers always execute before
// native refs for a shared event name.
func (c *Controller) buildMap(args []any) *binding.Map {
	m := binding.NewMap()

	for _, rec := range c.recs {
		slot := rec.Slot()
		ctx := &recognizer.Context{
			State:   c.state.Slot(slot),
			Timers:  slotTimers{c: c, slot: slot},
			Windows: slotWindows{c: c, slot: slot},
			Args:    args,
		}
		rec.Register(ctx, m)
	}

	names := make([]event.Name, 0, len(c.cfg.Native))
	for name := range c.cfg.Native {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	for _, name := range names {
		m.AddAll(name, c.cfg.Native[name])
	}

	return m
}

// attach applies the imperative strategy. Handler identities are
// recomputed on every bind, so diffing is impossible: the previous
// listeners are fully detached and the tracked sequence drained before
// anything is re-attached.
func (c *Controller) attach(target event.Surface, m *binding.Map) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, att := range c.primary {
		att.surface.RemoveListener(att.id)
	}
	c.primary = c.primary[:0]

	for _, name := range m.Names() {
		h := c.wrap(binding.Chain(m.Handlers(name)))
		id := target.AddListener(name, h, c.cfg.Options)
		c.primary = append(c.primary, attachment{name: name, id: id, surface: target})
	}
}

// compose applies the declarative strategy: one composed handler per
// name, keyed by the synthetic prop spelling, capture-suffixed when
// capture is configured. No listener state is tracked.
func (c *Controller) compose(m *binding.Map) event.Props {
	props := make(event.Props, m.Len())
	for _, name := range m.Names() {
		key := event.PropKey(name, c.cfg.Options.Capture)
		props[key] = c.wrap(binding.Chain(m.Handlers(name)))
	}
	return props
}

// wrap serializes a composed handler on runMu and records the shared
// pointer state before the chain runs. Panics pass through.
func (c *Controller) wrap(h event.Handler) event.Handler {
	return func(ev event.Event) {
		c.runMu.Lock()
		defer c.runMu.Unlock()
		c.dispatches.Add(1)
		c.state.Shared.Position = ev.Position
		c.state.Shared.Buttons = ev.Buttons
		c.state.Shared.Modifiers = ev.Modifiers
		h(ev)
	}
}
