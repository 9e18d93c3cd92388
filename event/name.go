package event

import "strings"

// Name identifies a native event. It is a closed enumeration: bindings are
// always keyed by a Name, normalizing away the synthetic/native spelling
// ambiguity at the package boundary.
type Name uint8

const (
	// None is the zero Name and never carries handlers.
	None Name = iota
	// PointerDown fires when a pointer button is pressed.
	PointerDown
	// PointerUp fires when a pointer button is released.
	PointerUp
	// PointerMove fires when the pointer position changes.
	PointerMove
	// PointerCancel fires when the host aborts an in-flight pointer sequence.
	PointerCancel
	// PointerEnter fires when the pointer crosses into the surface bounds.
	PointerEnter
	// PointerLeave fires when the pointer crosses out of the surface bounds.
	PointerLeave
	// Wheel fires on scroll wheel ticks.
	Wheel
	// Scroll fires when the surface's scroll position changes.
	Scroll
	// Click fires on a completed press/release pair over the surface.
	Click
	// KeyDown fires when a key is pressed.
	KeyDown
	// KeyUp fires when a key is released.
	KeyUp
)

// natives maps each Name to its lowercase native spelling.
// Indexed by Name; keep in sync with the constant block above.
var natives = [...]string{
	None:          "",
	PointerDown:   "pointerdown",
	PointerUp:     "pointerup",
	PointerMove:   "pointermove",
	PointerCancel: "pointercancel",
	PointerEnter:  "pointerenter",
	PointerLeave:  "pointerleave",
	Wheel:         "wheel",
	Scroll:        "scroll",
	Click:         "click",
	KeyDown:       "keydown",
	KeyUp:         "keyup",
}

// props maps each Name to its synthetic handler-prop spelling.
var props = [...]string{
	None:          "",
	PointerDown:   "onPointerDown",
	PointerUp:     "onPointerUp",
	PointerMove:   "onPointerMove",
	PointerCancel: "onPointerCancel",
	PointerEnter:  "onPointerEnter",
	PointerLeave:  "onPointerLeave",
	Wheel:         "onWheel",
	Scroll:        "onScroll",
	Click:         "onClick",
	KeyDown:       "onKeyDown",
	KeyUp:         "onKeyUp",
}

var byNative = func() map[string]Name {
	m := make(map[string]Name, len(natives))
	for n, s := range natives {
		if s != "" {
			m[s] = Name(n)
		}
	}
	return m
}()

// Names returns every valid Name in declaration order.
func Names() []Name {
	out := make([]Name, 0, len(natives)-1)
	for n := range natives {
		if Name(n) != None {
			out = append(out, Name(n))
		}
	}
	return out
}

// Native returns the lowercase native spelling ("pointerdown").
// The zero Name returns "".
func (n Name) Native() string {
	if int(n) >= len(natives) {
		return ""
	}
	return natives[n]
}

// Prop returns the synthetic handler-prop spelling ("onPointerDown").
// The zero Name returns "".
func (n Name) Prop() string {
	if int(n) >= len(props) {
		return ""
	}
	return props[n]
}

// String returns the native spelling, or "none" for the zero Name.
func (n Name) String() string {
	if s := n.Native(); s != "" {
		return s
	}
	return "none"
}

// Valid returns true if n is a member of the enumeration.
func (n Name) Valid() bool {
	return n != None && int(n) < len(natives)
}

// captureSuffix marks the capture phase in a synthetic prop key.
const captureSuffix = "Capture"

// PropKey returns the declarative map key for a Name, suffixed with the
// capture marker when capture is set ("onPointerDownCapture").
func PropKey(n Name, capture bool) string {
	if capture {
		return n.Prop() + captureSuffix
	}
	return n.Prop()
}

// ParseNative resolves a lowercase native spelling back to a Name.
func ParseNative(s string) (Name, bool) {
	n, ok := byNative[strings.ToLower(s)]
	return n, ok
}

// ParseProp resolves a synthetic prop key back to a Name and its capture
// flag. The synthetic prefix is stripped and the remainder lowercased, so
// "onPointerDownCapture" yields (PointerDown, true).
func ParseProp(key string) (name Name, capture bool, ok bool) {
	rest, found := strings.CutPrefix(key, "on")
	if !found || rest == "" {
		return None, false, false
	}
	if trimmed, had := strings.CutSuffix(rest, captureSuffix); had && trimmed != "" {
		rest = trimmed
		capture = true
	}
	n, ok := ParseNative(rest)
	if !ok {
		return None, false, false
	}
	return n, capture, true
}
