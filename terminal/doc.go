// Package terminal hosts gesture surfaces on a tcell terminal screen.
//
// A Surface is a rectangular region of the screen that holds event
// listeners. The Translator converts raw tcell mouse events into
// pointer events by diffing button state between reports, and the
// Router delivers each pointer event to exactly one surface: the
// target region when the pointer is inside its bounds, otherwise the
// window surface. The router also synthesizes enter, leave, and click
// events from the pointer stream.
package terminal
