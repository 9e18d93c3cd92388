package loader

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultEnvPrefix is the prefix scanned by NewEnvLoader.
const DefaultEnvPrefix = "GESTUREKIT_"

// EnvLoader loads profile values from environment variables.
//
// GESTUREKIT_DRAG_THRESHOLD=6 becomes drag.threshold = 6. The first
// underscore-separated component after the prefix names the gesture
// section; the rest form the setting name joined by underscores, so
// GESTUREKIT_WHEEL_END_DELAY maps to wheel.end_delay.
type EnvLoader struct {
	prefix string
}

// NewEnvLoader creates an environment variable loader. The prefix
// should include the trailing underscore; an empty prefix selects
// DefaultEnvPrefix.
func NewEnvLoader(prefix string) *EnvLoader {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	return &EnvLoader{prefix: prefix}
}

// Load reads prefixed environment variables and returns a profile map.
func (l *EnvLoader) Load() (map[string]any, error) {
	profile := make(map[string]any)

	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		path := l.envToPath(name)
		if path == "" {
			continue
		}
		setByPath(profile, path, parseValue(value))
	}

	return profile, nil
}

// envToPath converts GESTUREKIT_WHEEL_END_DELAY to wheel.end_delay.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	if name == "" {
		return ""
	}

	section, setting, ok := strings.Cut(name, "_")
	if !ok {
		return strings.ToLower(name)
	}
	return strings.ToLower(section) + "." + strings.ToLower(setting)
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part].(map[string]any); ok {
			current = next
		} else {
			next := make(map[string]any)
			current[part] = next
			current = next
		}
	}

	current[parts[len(parts)-1]] = value
}
