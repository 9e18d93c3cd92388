package event

// Options are dispatch options forwarded verbatim to every attach and
// detach call on a surface.
type Options struct {
	// Capture attaches the listener to the capture phase. For declarative
	// output this suffixes the prop key with the capture marker.
	Capture bool

	// Passive hints that the handler never suppresses default behavior.
	Passive bool
}

// ListenerID is an opaque handle identifying one attached listener.
type ListenerID string

// Surface is a native event target: anything that can hold listeners.
// Implementations must tolerate RemoveListener with an unknown ID (no-op).
type Surface interface {
	// AddListener attaches a handler for the named event and returns a
	// handle for later removal.
	AddListener(name Name, h Handler, opts Options) ListenerID

	// RemoveListener detaches a previously attached listener.
	RemoveListener(id ListenerID)
}

// Props is the declarative output contract: a mapping from synthetic
// handler-prop keys ("onPointerDown", "onWheelCapture") to composed
// handlers, consumed by an external rendering system.
type Props map[string]Handler
