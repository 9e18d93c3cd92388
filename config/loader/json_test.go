package loader

import (
	"testing"
)

func TestJSONLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/profile.json", `{
		"drag": {"threshold": 6, "button": "middle"},
		"wheel": {"end_delay": "200ms"}
	}`)

	loader := NewJSONLoaderWithFS(memfs, "/profile.json")
	profile, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(profile, "drag.threshold"); !ok || val != float64(6) {
		t.Errorf("drag.threshold = %v (%T), want 6", val, val)
	}
	if val, ok := getByPath(profile, "drag.button"); !ok || val != "middle" {
		t.Errorf("drag.button = %v, want middle", val)
	}
	if val, ok := getByPath(profile, "wheel.end_delay"); !ok || val != "200ms" {
		t.Errorf("wheel.end_delay = %v, want 200ms", val)
	}
}

func TestJSONLoader_MissingFile(t *testing.T) {
	loader := NewJSONLoaderWithFS(NewMemFS(), "/absent.json")
	profile, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if profile != nil {
		t.Errorf("expected nil profile for missing file, got %v", profile)
	}
}

func TestJSONLoader_RejectsNonObject(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/array.json", `[1, 2, 3]`)

	loader := NewJSONLoaderWithFS(memfs, "/array.json")
	if _, err := loader.Load(); err == nil {
		t.Fatal("expected error for non-object root")
	}
}

func TestProfileGetSet(t *testing.T) {
	p, err := ParseProfile([]byte(`{"drag": {"threshold": 0}}`))
	if err != nil {
		t.Fatalf("ParseProfile failed: %v", err)
	}

	if got := p.Get("drag.threshold"); got != float64(0) {
		t.Errorf("Get = %v, want 0", got)
	}
	if got := p.Get("drag.button"); got != nil {
		t.Errorf("Get absent = %v, want nil", got)
	}

	if err := p.Set("drag.threshold", 6); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := p.Set("pinch.step", 0.05); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if got := p.Get("drag.threshold"); got != float64(6) {
		t.Errorf("Get after Set = %v, want 6", got)
	}
	if got := p.Get("pinch.step"); got != 0.05 {
		t.Errorf("Get nested created path = %v, want 0.05", got)
	}

	m := p.Map()
	if val, ok := getByPath(m, "pinch.step"); !ok || val != 0.05 {
		t.Errorf("Map pinch.step = %v, want 0.05", val)
	}
}

func TestProfileDelete(t *testing.T) {
	p, err := ParseProfile([]byte(`{"drag": {"threshold": 6}, "click": {"distance": 4}}`))
	if err != nil {
		t.Fatalf("ParseProfile failed: %v", err)
	}

	if err := p.Delete("drag.threshold"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := p.Get("drag.threshold"); got != nil {
		t.Errorf("deleted key still present: %v", got)
	}
	if got := p.Get("click.distance"); got != float64(4) {
		t.Errorf("sibling key lost: %v", got)
	}
}
