package lua

import (
	"fmt"
	"os"
	"sync"

	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/gesturekit/binding"
	"github.com/dshills/gesturekit/event"
	"github.com/dshills/gesturekit/recognizer"
)

// Recognizer is a gesture recognizer driven by a Lua script.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes every
// script invocation. Dispatch is already serialized by the controller,
// so the mutex only matters when one script instance is shared across
// controllers.
type Recognizer struct {
	mu sync.Mutex

	l       *glua.LState
	slot    recognizer.Slot
	names   []event.Name
	onEvent *glua.LFunction
	closed  bool
}

// New compiles a recognizer script. The script's return table must name
// a slot, list the events it consumes, and provide an on_event function.
func New(script string) (*Recognizer, error) {
	l := glua.NewState(glua.Options{SkipOpenLibs: true})
	openSafeLibraries(l)

	if err := l.DoString(script); err != nil {
		l.Close()
		return nil, fmt.Errorf("loading recognizer script: %w", err)
	}

	ret := l.Get(-1)
	l.Pop(1)

	tbl, ok := ret.(*glua.LTable)
	if !ok {
		l.Close()
		return nil, ErrInvalidScript
	}

	r := &Recognizer{l: l}
	if err := r.configure(tbl); err != nil {
		l.Close()
		return nil, err
	}
	return r, nil
}

// NewFromFile compiles a recognizer script read from a file.
func NewFromFile(path string) (*Recognizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recognizer script %s: %w", path, err)
	}
	r, err := New(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

func (r *Recognizer) configure(tbl *glua.LTable) error {
	slot, ok := tbl.RawGetString("slot").(glua.LString)
	if !ok || slot == "" {
		return ErrMissingSlot
	}
	r.slot = recognizer.Slot(slot)

	events, ok := tbl.RawGetString("events").(*glua.LTable)
	if !ok || events.Len() == 0 {
		return ErrMissingEvents
	}
	for i := 1; i <= events.Len(); i++ {
		s, ok := events.RawGetInt(i).(glua.LString)
		if !ok {
			return ErrMissingEvents
		}
		name, ok := event.ParseNative(string(s))
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEvent, string(s))
		}
		r.names = append(r.names, name)
	}

	fn, ok := tbl.RawGetString("on_event").(*glua.LFunction)
	if !ok {
		return ErrMissingHandler
	}
	r.onEvent = fn

	return nil
}

// Slot returns the script's declared slot name.
func (r *Recognizer) Slot() recognizer.Slot { return r.slot }

// Register contributes a handler for each declared event name.
func (r *Recognizer) Register(ctx *recognizer.Context, m *binding.Map) {
	for _, name := range r.names {
		m.Add(name, func(ev event.Event) {
			r.invoke(ctx.State, ev)
		})
	}
}

// Close releases the interpreter. Dispatching after Close panics.
func (r *Recognizer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.l.Close()
}

// invoke calls on_event with the slot state and event as tables. Script
// runtime errors panic, matching the fault contract of Go handlers.
func (r *Recognizer) invoke(st *recognizer.SlotState, ev event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		panic(ErrClosed)
	}

	stateTbl := r.stateToLua(st)
	evTbl := r.eventToLua(ev)

	err := r.l.CallByParam(glua.P{
		Fn:      r.onEvent,
		NRet:    0,
		Protect: true,
	}, stateTbl, evTbl)
	if err != nil {
		panic(fmt.Errorf("recognizer %q: %w", r.slot, err))
	}

	r.stateFromLua(stateTbl, st)
}

func (r *Recognizer) stateToLua(st *recognizer.SlotState) *glua.LTable {
	tbl := r.l.NewTable()
	tbl.RawSetString("active", glua.LBool(st.Active))
	tbl.RawSetString("intentional", glua.LBool(st.Intentional))
	tbl.RawSetString("count", glua.LNumber(st.Count))
	tbl.RawSetString("scale", glua.LNumber(st.Scale))
	tbl.RawSetString("start_x", glua.LNumber(st.Start.X))
	tbl.RawSetString("start_y", glua.LNumber(st.Start.Y))
	tbl.RawSetString("x", glua.LNumber(st.Current.X))
	tbl.RawSetString("y", glua.LNumber(st.Current.Y))

	for k, v := range st.Values {
		tbl.RawSetString(k, goToLua(v))
	}
	return tbl
}

// wellKnown are state table fields mirrored into SlotState rather than
// the Values map.
var wellKnown = map[string]bool{
	"active": true, "intentional": true, "count": true, "scale": true,
	"start_x": true, "start_y": true, "x": true, "y": true,
}

func (r *Recognizer) stateFromLua(tbl *glua.LTable, st *recognizer.SlotState) {
	if b, ok := tbl.RawGetString("active").(glua.LBool); ok {
		st.Active = bool(b)
	}
	if b, ok := tbl.RawGetString("intentional").(glua.LBool); ok {
		st.Intentional = bool(b)
	}
	if n, ok := tbl.RawGetString("count").(glua.LNumber); ok {
		st.Count = int(n)
	}
	if n, ok := tbl.RawGetString("scale").(glua.LNumber); ok {
		st.Scale = float64(n)
	}

	tbl.ForEach(func(k, v glua.LValue) {
		key, ok := k.(glua.LString)
		if !ok || wellKnown[string(key)] {
			return
		}
		st.Set(string(key), luaToGo(v))
	})
}

func (r *Recognizer) eventToLua(ev event.Event) *glua.LTable {
	tbl := r.l.NewTable()
	tbl.RawSetString("name", glua.LString(ev.Name.Native()))
	tbl.RawSetString("x", glua.LNumber(ev.Position.X))
	tbl.RawSetString("y", glua.LNumber(ev.Position.Y))
	tbl.RawSetString("buttons", glua.LNumber(ev.Buttons))
	tbl.RawSetString("modifiers", glua.LNumber(ev.Modifiers))
	tbl.RawSetString("wheel_x", glua.LNumber(ev.WheelX))
	tbl.RawSetString("wheel_y", glua.LNumber(ev.WheelY))
	tbl.RawSetString("time_ms", glua.LNumber(ev.Time.UnixMilli()))
	return tbl
}

func goToLua(v any) glua.LValue {
	switch vv := v.(type) {
	case nil:
		return glua.LNil
	case bool:
		return glua.LBool(vv)
	case int:
		return glua.LNumber(vv)
	case int64:
		return glua.LNumber(vv)
	case float64:
		return glua.LNumber(vv)
	case string:
		return glua.LString(vv)
	default:
		return glua.LNil
	}
}

func luaToGo(v glua.LValue) any {
	switch vv := v.(type) {
	case glua.LBool:
		return bool(vv)
	case glua.LNumber:
		f := float64(vv)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case glua.LString:
		return string(vv)
	default:
		return nil
	}
}

// openSafeLibraries opens only side-effect-free Lua standard libraries.
// io, os, debug, and package stay closed.
func openSafeLibraries(l *glua.LState) {
	glua.OpenBase(l)
	glua.OpenTable(l)
	glua.OpenString(l)
	glua.OpenMath(l)
}
