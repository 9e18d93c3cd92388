// Package event defines the shared event vocabulary for Gesturekit.
//
// The package is deliberately small: it holds the fixed enumeration of
// native event names, the pointer event payload delivered to handlers,
// listener dispatch options, and the Surface contract that attachment
// targets implement.
//
// # Event Names
//
// Name is a closed enumeration. Every binding produced by a recognizer is
// keyed by a Name, never by a free-form string. A Name has two spellings:
//
//	event.PointerDown.Native() // "pointerdown" - used for surface attachment
//	event.PointerDown.Prop()   // "onPointerDown" - used for declarative props
//
// ParseProp and ParseNative convert back from either spelling.
//
// # Surfaces
//
// A Surface is anything that can hold native listeners: a screen region, a
// widget, or the whole window. AddListener returns an opaque ListenerID;
// removal is by ID because Go function values are not comparable.
package event
