package controller_test

import (
	"testing"
	"time"

	"github.com/dshills/gesturekit/config"
	"github.com/dshills/gesturekit/controller"
	"github.com/dshills/gesturekit/event"
)

func TestCleanTearsDownEverything(t *testing.T) {
	target := newFakeSurface()
	window := newFakeSurface()
	cfg := config.Config{Target: target, Window: window}
	ctrl := controller.New(cfg,
		contribute("a", event.PointerDown, func(event.Event) {}),
	)

	if _, err := ctrl.Bind(); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	ctrl.After("wheel", time.Hour, func() {})
	ctrl.After("scroll", time.Hour, func() {})
	ctrl.AddWindowListeners("drag", []event.Listener{
		{Name: event.PointerMove, Handler: func(event.Event) {}},
	})

	stats := ctrl.Stats()
	if stats.PendingTimers != 2 || stats.WindowGroups != 1 || stats.PrimaryListeners != 1 {
		t.Fatalf("pre-clean stats = %+v", stats)
	}

	ctrl.Clean()

	stats = ctrl.Stats()
	if stats.PendingTimers != 0 {
		t.Errorf("PendingTimers = %d, want 0", stats.PendingTimers)
	}
	if stats.WindowGroups != 0 {
		t.Errorf("WindowGroups = %d, want 0", stats.WindowGroups)
	}
	if stats.PrimaryListeners != 0 {
		t.Errorf("PrimaryListeners = %d, want 0", stats.PrimaryListeners)
	}
	if target.count() != 0 {
		t.Errorf("target still has %d listeners", target.count())
	}
	if window.count() != 0 {
		t.Errorf("window still has %d listeners", window.count())
	}
}

func TestCleanIdempotent(t *testing.T) {
	target := newFakeSurface()
	ctrl := controller.New(config.Config{Target: target},
		contribute("a", event.PointerDown, func(event.Event) {}),
	)

	if _, err := ctrl.Bind(); err != nil {
		t.Fatalf("Bind: %v", err)
	}

	ctrl.Clean()
	removesAfterFirst := target.removes

	ctrl.Clean() // finds empty collections; no further side effects

	if target.removes != removesAfterFirst {
		t.Errorf("second Clean performed %d extra detaches", target.removes-removesAfterFirst)
	}
}

func TestBindAfterCleanRederives(t *testing.T) {
	target := newFakeSurface()
	ctrl := controller.New(config.Config{Target: target},
		contribute("a", event.PointerDown, func(event.Event) {}),
	)

	if _, err := ctrl.Bind(); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	ctrl.Clean()

	if _, err := ctrl.Bind(); err != nil {
		t.Fatalf("Bind after Clean: %v", err)
	}
	if target.count() != 1 {
		t.Errorf("expected 1 listener after re-bind, got %d", target.count())
	}
}
