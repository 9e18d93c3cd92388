package recognizer_test

import (
	"time"

	"github.com/dshills/gesturekit/event"
	"github.com/dshills/gesturekit/recognizer"
)

// fakeTimers captures scheduled callbacks so tests can fire them
// deterministically.
type fakeTimers struct {
	pending   func()
	delay     time.Duration
	cancelled int
}

func (f *fakeTimers) After(d time.Duration, fn func()) {
	f.delay = d
	f.pending = fn
}

func (f *fakeTimers) Cancel() {
	f.pending = nil
	f.cancelled++
}

// fire runs and clears the pending callback.
func (f *fakeTimers) fire() {
	if f.pending != nil {
		fn := f.pending
		f.pending = nil
		fn()
	}
}

// fakeWindows records window-listener group lifecycle.
type fakeWindows struct {
	listeners []event.Listener
	adds      int
	removes   int
}

func (f *fakeWindows) Add(ls []event.Listener) {
	f.listeners = ls
	f.adds++
}

func (f *fakeWindows) Remove() {
	f.listeners = nil
	f.removes++
}

// dispatch delivers an event to the recorded window listeners for name.
func (f *fakeWindows) dispatch(ev event.Event) {
	for _, l := range f.listeners {
		if l.Name == ev.Name {
			l.Handler(ev)
		}
	}
}

func newContext() (*recognizer.Context, *fakeTimers, *fakeWindows) {
	ft := &fakeTimers{}
	fw := &fakeWindows{}
	ctx := &recognizer.Context{
		State:   &recognizer.SlotState{},
		Timers:  ft,
		Windows: fw,
	}
	return ctx, ft, fw
}
