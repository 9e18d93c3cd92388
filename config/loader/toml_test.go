package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/profile.toml", `
[drag]
threshold = 6
button = "primary"

[click]
interval = "300ms"
distance = 2

[pinch]
step = 0.1
`)

	loader := NewTOMLLoaderWithFS(memfs, "/profile.toml")
	profile, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(profile, "drag.threshold"); !ok || val != int64(6) {
		t.Errorf("drag.threshold = %v (%T), want 6", val, val)
	}
	if val, ok := getByPath(profile, "drag.button"); !ok || val != "primary" {
		t.Errorf("drag.button = %v, want primary", val)
	}
	if val, ok := getByPath(profile, "click.interval"); !ok || val != "300ms" {
		t.Errorf("click.interval = %v, want 300ms", val)
	}
	if val, ok := getByPath(profile, "pinch.step"); !ok || val != 0.1 {
		t.Errorf("pinch.step = %v, want 0.1", val)
	}
}

func TestTOMLLoader_MissingFile(t *testing.T) {
	loader := NewTOMLLoaderWithFS(NewMemFS(), "/absent.toml")
	profile, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if profile != nil {
		t.Errorf("expected nil profile for missing file, got %v", profile)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[drag\nthreshold = 6")

	loader := NewTOMLLoaderWithFS(memfs, "/bad.toml")
	_, err := loader.Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("error type = %T, want *ParseError", err)
	}
}

func TestTOMLLoader_FromReader(t *testing.T) {
	loader := NewTOMLLoader("")
	profile, err := loader.LoadFromReader(strings.NewReader("[move]\nend_delay = 80\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if val, ok := getByPath(profile, "move.end_delay"); !ok || val != int64(80) {
		t.Errorf("move.end_delay = %v, want 80", val)
	}
}
