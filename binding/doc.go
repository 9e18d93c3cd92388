// Package binding builds and composes per-event handler sequences.
//
// A Map is a transient, insertion-ordered mapping from event name to an
// ordered handler sequence. Recognizers append to it during a bind call;
// collisions on a name extend the sequence, never overwrite it. A Map is
// built fresh on every bind and never persisted.
//
// Chain composes one sequence into a single handler that invokes each
// constituent in order with the same event. Faults are not caught here;
// they propagate to the dispatch caller.
package binding
