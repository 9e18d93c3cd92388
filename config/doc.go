// Package config holds the controller configuration: attachment target,
// secondary (window) surface, event dispatch options, static native-ref
// handlers, and per-gesture tuning values.
//
// Configuration is produced by the host and consumed read-only by the
// controller. Tuning values can be loaded from TOML, YAML, or JSON
// profiles (see the loader subpackage) and hot-reloaded with Watcher.
package config
