package binding_test

import (
	"testing"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
)

func TestMapAddPreservesOrderWithinName(t *testing.T) {
	m := binding.NewMap()

	var calls []string
	m.Add(event.Wheel, func(event.Event) { calls = append(calls, "w1") })
	m.Add(event.Wheel, func(event.Event) { calls = append(calls, "w2") })
	m.Add(event.Wheel, func(event.Event) { calls = append(calls, "w3") })

	hs := m.Handlers(event.Wheel)
	if len(hs) != 3 {
		t.Fatalf("expected 3 handlers, got %d", len(hs))
	}
	for _, h := range hs {
		h(event.Event{})
	}
	want := []string{"w1", "w2", "w3"}
	for i, w := range want {
		if calls[i] != w {
			t.Errorf("call %d = %q, want %q", i, calls[i], w)
		}
	}
}

func TestMapCollisionExtendsNeverOverwrites(t *testing.T) {
	m := binding.NewMap()
	m.Add(event.PointerDown, func(event.Event) {})
	m.Add(event.PointerDown, func(event.Event) {})

	if got := len(m.Handlers(event.PointerDown)); got != 2 {
		t.Errorf("expected collision to extend to 2 handlers, got %d", got)
	}
}

func TestMapNamesFirstInsertionOrder(t *testing.T) {
	m := binding.NewMap()
	noop := func(event.Event) {}
	m.Add(event.Wheel, noop)
	m.Add(event.PointerDown, noop)
	m.Add(event.Wheel, noop) // repeat must not reorder
	m.Add(event.Click, noop)

	want := []event.Name{event.Wheel, event.PointerDown, event.Click}
	got := m.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMapIgnoresInvalid(t *testing.T) {
	m := binding.NewMap()
	m.Add(event.None, func(event.Event) {})
	m.Add(event.Click, nil)

	if m.Len() != 0 {
		t.Errorf("expected empty map, got %d names", m.Len())
	}
}

func TestMapAddAll(t *testing.T) {
	m := binding.NewMap()
	noop := func(event.Event) {}
	m.AddAll(event.Scroll, []event.Handler{noop, noop})

	if got := len(m.Handlers(event.Scroll)); got != 2 {
		t.Errorf("expected 2 handlers, got %d", got)
	}
}
