package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSONLoader loads profiles from JSON files.
type JSONLoader struct {
	fs   FileSystem
	path string
}

// NewJSONLoader creates a new JSON loader for the given path.
func NewJSONLoader(path string) *JSONLoader {
	return &JSONLoader{
		fs:   DefaultFS(),
		path: path,
	}
}

// NewJSONLoaderWithFS creates a JSON loader with a custom file system.
func NewJSONLoaderWithFS(fs FileSystem, path string) *JSONLoader {
	return &JSONLoader{
		fs:   fs,
		path: path,
	}
}

// Load reads a profile from the configured path.
func (l *JSONLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads a profile from a specific path.
func (l *JSONLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	return l.parse(path, data)
}

// LoadFromReader reads a profile from an io.Reader.
func (l *JSONLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	return l.parse("<reader>", data)
}

func (l *JSONLoader) parse(source string, data []byte) (map[string]any, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{
			Path:    source,
			Message: "invalid JSON",
		}
	}

	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return nil, &ParseError{
			Path:    source,
			Message: fmt.Sprintf("profile root must be an object, got %s", parsed.Type),
		}
	}

	profile, ok := parsed.Value().(map[string]any)
	if !ok {
		return nil, &ParseError{
			Path:    source,
			Message: "profile root must be an object",
		}
	}
	return profile, nil
}

// Profile is an editable JSON profile document. Get and Set address
// values by dotted path ("drag.threshold") without disturbing the rest
// of the document, so comments-free round trips preserve unknown keys.
type Profile struct {
	raw string
}

// NewProfile creates an empty profile document.
func NewProfile() *Profile {
	return &Profile{raw: "{}"}
}

// ParseProfile wraps an existing JSON document.
func ParseProfile(data []byte) (*Profile, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: "<profile>", Message: "invalid JSON"}
	}
	return &Profile{raw: string(data)}, nil
}

// Get returns the value at the dotted path, or nil if absent.
func (p *Profile) Get(path string) any {
	res := gjson.Get(p.raw, path)
	if !res.Exists() {
		return nil
	}
	return res.Value()
}

// Set writes a value at the dotted path, creating intermediate objects
// as needed.
func (p *Profile) Set(path string, value any) error {
	raw, err := sjson.Set(p.raw, path, value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	p.raw = raw
	return nil
}

// Delete removes the value at the dotted path.
func (p *Profile) Delete(path string) error {
	raw, err := sjson.Delete(p.raw, path)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", path, err)
	}
	p.raw = raw
	return nil
}

// Map returns the whole document as a nested map.
func (p *Profile) Map() map[string]any {
	m, ok := gjson.Parse(p.raw).Value().(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}

// Bytes returns the current document.
func (p *Profile) Bytes() []byte {
	return []byte(p.raw)
}
