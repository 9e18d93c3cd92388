package binding_test

import (
	"testing"
	"time"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

func TestChainInvokesInOrder(t *testing.T) {
	var calls []string
	h := binding.Chain([]event.Handler{
		func(event.Event) { calls = append(calls, "a") },
		func(event.Event) { calls = append(calls, "b") },
		func(event.Event) { calls = append(calls, "c") },
	})

	h(event.Event{})

	want := []string{"a", "b", "c"}
	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(calls))
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestChainSameEventToAll(t *testing.T) {
	ev := event.Event{
		Name:     event.PointerMove,
		ID:       "ev-1",
		Position: event.Position{X: 7, Y: 9},
		Time:     time.Now(),
	}

	var got []event.Event
	h := binding.Chain([]event.Handler{
		func(e event.Event) { got = append(got, e) },
		func(e event.Event) { got = append(got, e) },
	})
	h(ev)

	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(got))
	}
	for i, g := range got {
		if g.ID != ev.ID || !g.Position.Equal(ev.Position) {
			t.Errorf("delivery %d got different event: %+v", i, g)
		}
	}
}

func TestChainEmptyIsNoop(t *testing.T) {
	h := binding.Chain(nil)
	if h == nil {
		t.Fatal("expected non-nil handler for empty chain")
	}
	h(event.Event{}) // must not panic
}

func TestChainCopiesSequence(t *testing.T) {
	count := 0
	hs := make([]event.Handler, 0, 2)
	hs = append(hs, func(event.Event) { count++ }, func(event.Event) { count++ })

	h := binding.Chain(hs)
	hs[0] = func(event.Event) { count += 100 }

	h(event.Event{})
	if count != 2 {
		t.Errorf("expected composed chain to be immune to slice mutation, count = %d", count)
	}
}
