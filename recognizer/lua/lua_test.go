package lua_test

import (
	"errors"
	"testing"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
	"github.com/dshills/gesturekit/recognizer"
	luarec "github.com/dshills/gesturekit/recognizer/lua"
)

const tapScript = `
return {
    slot = "tap",
    events = {"pointerdown", "pointerup"},
    on_event = function(state, ev)
        if ev.name == "pointerdown" then
            state.active = true
            state.presses = (state.presses or 0) + 1
        elseif ev.name == "pointerup" then
            state.active = false
            state.count = state.count + 1
        end
    end,
}
`

func dispatch(t *testing.T, r *luarec.Recognizer, st *recognizer.SlotState, ev event.Event) {
	t.Helper()

	m := binding.NewMap()
	r.Register(&recognizer.Context{State: st}, m)
	for _, h := range m.Handlers(ev.Name) {
		h(ev)
	}
}

func TestScriptRecognizer(t *testing.T) {
	r, err := luarec.New(tapScript)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	if r.Slot() != "tap" {
		t.Errorf("Slot = %q, want tap", r.Slot())
	}

	m := binding.NewMap()
	st := &recognizer.SlotState{}
	r.Register(&recognizer.Context{State: st}, m)

	names := m.Names()
	if len(names) != 2 || names[0] != event.PointerDown || names[1] != event.PointerUp {
		t.Fatalf("registered names = %v, want [pointerdown pointerup]", names)
	}

	for _, h := range m.Handlers(event.PointerDown) {
		h(event.Event{Name: event.PointerDown})
	}
	if !st.Active {
		t.Error("script did not set active on press")
	}
	if v, _ := st.Get("presses"); v != int64(1) {
		t.Errorf("presses = %v, want 1", v)
	}

	for _, h := range m.Handlers(event.PointerUp) {
		h(event.Event{Name: event.PointerUp})
	}
	if st.Active {
		t.Error("script did not clear active on release")
	}
	if st.Count != 1 {
		t.Errorf("Count = %d, want 1", st.Count)
	}
}

func TestScriptStatePersistsAcrossEvents(t *testing.T) {
	r, err := luarec.New(tapScript)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	st := &recognizer.SlotState{}
	for i := 0; i < 3; i++ {
		dispatch(t, r, st, event.Event{Name: event.PointerDown})
	}

	if v, _ := st.Get("presses"); v != int64(3) {
		t.Errorf("presses = %v, want 3", v)
	}
}

func TestScriptSeesEventFields(t *testing.T) {
	r, err := luarec.New(`
return {
    slot = "probe",
    events = {"wheel"},
    on_event = function(state, ev)
        state.last_y = ev.wheel_y
        state.at_x = ev.x
    end,
}
`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	st := &recognizer.SlotState{}
	dispatch(t, r, st, event.Event{
		Name:     event.Wheel,
		Position: event.Position{X: 7, Y: 2},
		WheelY:   -1,
	})

	if v, _ := st.Get("last_y"); v != int64(-1) {
		t.Errorf("last_y = %v, want -1", v)
	}
	if v, _ := st.Get("at_x"); v != int64(7) {
		t.Errorf("at_x = %v, want 7", v)
	}
}

func TestScriptValidation(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   error
	}{
		{"not a table", `return 42`, luarec.ErrInvalidScript},
		{"no slot", `return {events = {"wheel"}, on_event = function() end}`, luarec.ErrMissingSlot},
		{"no events", `return {slot = "x", on_event = function() end}`, luarec.ErrMissingEvents},
		{"no handler", `return {slot = "x", events = {"wheel"}}`, luarec.ErrMissingHandler},
		{"bad event name", `return {slot = "x", events = {"tripleclick"}, on_event = function() end}`, luarec.ErrUnknownEvent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := luarec.New(tt.script)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestScriptSyntaxError(t *testing.T) {
	if _, err := luarec.New(`return {`); err == nil {
		t.Error("expected error for invalid Lua")
	}
}

func TestScriptRuntimeErrorPanics(t *testing.T) {
	r, err := luarec.New(`
return {
    slot = "boom",
    events = {"pointerdown"},
    on_event = function(state, ev)
        error("deliberate failure")
    end,
}
`)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer r.Close()

	defer func() {
		if recover() == nil {
			t.Error("expected panic from script runtime error")
		}
	}()

	dispatch(t, r, &recognizer.SlotState{}, event.Event{Name: event.PointerDown})
}

func TestDispatchAfterClosePanics(t *testing.T) {
	r, err := luarec.New(tapScript)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.Close()
	r.Close() // idempotent

	defer func() {
		if recover() == nil {
			t.Error("expected panic after Close")
		}
	}()
	dispatch(t, r, &recognizer.SlotState{}, event.Event{Name: event.PointerDown})
}
