package lua

import "errors"

var (
	// ErrInvalidScript indicates the script did not return a recognizer table.
	ErrInvalidScript = errors.New("script must return a recognizer table")

	// ErrMissingSlot indicates the recognizer table has no slot name.
	ErrMissingSlot = errors.New("recognizer table missing slot")

	// ErrMissingEvents indicates the recognizer table has no event list.
	ErrMissingEvents = errors.New("recognizer table missing events")

	// ErrMissingHandler indicates the recognizer table has no on_event function.
	ErrMissingHandler = errors.New("recognizer table missing on_event function")

	// ErrUnknownEvent indicates the event list names an unknown event.
	ErrUnknownEvent = errors.New("unknown event name")

	// ErrClosed indicates the recognizer's interpreter has been closed.
	ErrClosed = errors.New("recognizer closed")
)
