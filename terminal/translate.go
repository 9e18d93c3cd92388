package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/gesturekit/event"
)

// Translator converts tcell mouse reports into pointer events. Terminal
// mouse reports carry absolute button state, so presses and releases
// are recovered by diffing consecutive reports.
type Translator struct {
	mu       sync.Mutex
	prevBtns tcell.ButtonMask
	prevPos  event.Position
	seen     bool
}

// NewTranslator creates a translator with no prior button state.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate converts one tcell mouse event into zero or more pointer
// events, in the order they logically occurred: releases, presses, then
// movement. Wheel reports become Wheel events and never affect button
// state.
func (t *Translator) Translate(ev *tcell.EventMouse) []event.Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	x, y := ev.Position()
	pos := event.Position{X: x, Y: y}
	mods := convertModifiers(ev.Modifiers())
	btns := ev.Buttons()

	base := event.Event{
		ID:        uuid.NewString(),
		Position:  pos,
		Modifiers: mods,
		Time:      ev.When(),
	}

	var out []event.Event

	if wx, wy, ok := wheelDelta(btns); ok {
		wheel := base
		wheel.Name = event.Wheel
		wheel.WheelX = wx
		wheel.WheelY = wy
		wheel.Buttons = convertButtons(t.prevBtns)
		out = append(out, wheel)
	}

	pressed := btns &^ tcell.WheelUp &^ tcell.WheelDown &^ tcell.WheelLeft &^ tcell.WheelRight
	prev := t.prevBtns

	for _, b := range pointerButtons {
		if prev&b.mask != 0 && pressed&b.mask == 0 {
			up := base
			up.Name = event.PointerUp
			prev &^= b.mask
			up.Buttons = convertButtons(prev)
			out = append(out, up)
		}
	}
	for _, b := range pointerButtons {
		if t.prevBtns&b.mask == 0 && pressed&b.mask != 0 {
			down := base
			down.Name = event.PointerDown
			prev |= b.mask
			down.Buttons = convertButtons(prev)
			out = append(out, down)
		}
	}

	if len(out) == 0 && t.seen && !pos.Equal(t.prevPos) {
		move := base
		move.Name = event.PointerMove
		move.Buttons = convertButtons(pressed)
		out = append(out, move)
	}

	t.prevBtns = pressed
	t.prevPos = pos
	t.seen = true

	return out
}

// Reset clears tracked button state, as after a terminal suspend.
func (t *Translator) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prevBtns = 0
	t.prevPos = event.Position{}
	t.seen = false
}

var pointerButtons = []struct {
	mask tcell.ButtonMask
	btn  event.Buttons
}{
	{tcell.ButtonPrimary, event.ButtonPrimary},
	{tcell.ButtonSecondary, event.ButtonSecondary},
	{tcell.ButtonMiddle, event.ButtonMiddle},
}

func convertButtons(m tcell.ButtonMask) event.Buttons {
	var out event.Buttons
	for _, b := range pointerButtons {
		if m&b.mask != 0 {
			out |= b.btn
		}
	}
	return out
}

func convertModifiers(m tcell.ModMask) event.Modifier {
	var out event.Modifier
	if m&tcell.ModShift != 0 {
		out |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= event.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= event.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= event.ModMeta
	}
	return out
}

// wheelDelta extracts wheel tick deltas from a button mask. Up and left
// are negative, matching pointer event conventions.
func wheelDelta(m tcell.ButtonMask) (wx, wy int, ok bool) {
	if m&tcell.WheelUp != 0 {
		wy--
	}
	if m&tcell.WheelDown != 0 {
		wy++
	}
	if m&tcell.WheelLeft != 0 {
		wx--
	}
	if m&tcell.WheelRight != 0 {
		wx++
	}
	return wx, wy, wx != 0 || wy != 0
}
