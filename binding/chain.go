package binding

import "github.com/dshills/gesturekit/event"

// Chain composes an ordered handler sequence into a single handler.
// The composed handler invokes each constituent in order with the same
// event value. An empty or nil sequence composes to a no-op.
func Chain(hs []event.Handler) event.Handler {
	switch len(hs) {
	case 0:
		return func(event.Event) {}
	case 1:
		return hs[0]
	}
	// Copy so later Map mutations cannot alter an already-composed chain.
	seq := make([]event.Handler, len(hs))
	copy(seq, hs)
	return func(ev event.Event) {
		for _, h := range seq {
			h(ev)
		}
	}
}
