package recognizer_test

import (
	"testing"
	"time"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
	"github.com/dshills/gesturekit/recognizer"
)

func clickAt(x, y int, ts time.Time) event.Event {
	return event.Event{
		Name:     event.Click,
		Position: event.Position{X: x, Y: y},
		Time:     ts,
	}
}

func TestClickCountsSequence(t *testing.T) {
	ctx, ft, _ := newContext()

	var finals []int
	c := recognizer.NewClick(recognizer.DefaultClickConfig(), func(s *recognizer.SlotState, ev event.Event) {
		finals = append(finals, s.Count)
	})

	m := binding.NewMap()
	c.Register(ctx, m)
	h := m.Handlers(event.Click)[0]

	base := time.Now()
	h(clickAt(5, 5, base))
	h(clickAt(5, 6, base.Add(100*time.Millisecond)))
	ft.fire()

	if len(finals) != 1 || finals[0] != 2 {
		t.Errorf("finals = %v, want [2]", finals)
	}
	if ctx.State.Active {
		t.Error("expected sequence inactive after finalize")
	}
}

func TestClickNewSequenceAfterTimeout(t *testing.T) {
	ctx, ft, _ := newContext()

	c := recognizer.NewClick(recognizer.DefaultClickConfig(), nil)
	m := binding.NewMap()
	c.Register(ctx, m)
	h := m.Handlers(event.Click)[0]

	base := time.Now()
	h(clickAt(5, 5, base))
	h(clickAt(5, 5, base.Add(time.Second)))

	if ctx.State.Count != 1 {
		t.Errorf("count = %d, want 1 (timeout broke the sequence)", ctx.State.Count)
	}
	ft.fire()
}

func TestClickNewSequenceWhenFar(t *testing.T) {
	ctx, _, _ := newContext()

	c := recognizer.NewClick(recognizer.DefaultClickConfig(), nil)
	m := binding.NewMap()
	c.Register(ctx, m)
	h := m.Handlers(event.Click)[0]

	base := time.Now()
	h(clickAt(0, 0, base))
	h(clickAt(20, 20, base.Add(50*time.Millisecond)))

	if ctx.State.Count != 1 {
		t.Errorf("count = %d, want 1 (distance broke the sequence)", ctx.State.Count)
	}
}

func TestClickCountWrapsAfterTriple(t *testing.T) {
	ctx, _, _ := newContext()

	c := recognizer.NewClick(recognizer.DefaultClickConfig(), nil)
	m := binding.NewMap()
	c.Register(ctx, m)
	h := m.Handlers(event.Click)[0]

	base := time.Now()
	for i := 0; i < 4; i++ {
		h(clickAt(5, 5, base.Add(time.Duration(i)*100*time.Millisecond)))
	}

	if ctx.State.Count != 1 {
		t.Errorf("count = %d, want 1 (quad wraps to single)", ctx.State.Count)
	}
}

func TestClickZeroTimestampTolerated(t *testing.T) {
	ctx, _, _ := newContext()

	c := recognizer.NewClick(recognizer.DefaultClickConfig(), nil)
	m := binding.NewMap()
	c.Register(ctx, m)
	h := m.Handlers(event.Click)[0]

	h(clickAt(1, 1, time.Time{}))
	if ctx.State.Time.IsZero() {
		t.Error("expected a fallback timestamp for zero event time")
	}
}
