package skin

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Default(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "default"} {
		s, err := Load(name, t.TempDir())
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if s.Palette(false).Background != "#ffffff" || s.Palette(true).Background != "#111827" {
			t.Errorf("Load(%q) returned unexpected palettes: %+v", name, s)
		}
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skins"), 0o755); err != nil {
		t.Fatal(err)
	}
	doc := []byte("dark:\n  accent: \"#ff00ff\"\n")
	if err := os.WriteFile(filepath.Join(dir, "skins", "neon.yml"), doc, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load("neon", dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Name != "neon" {
		t.Errorf("Name = %q, want neon", s.Name)
	}
	if s.Dark.Accent != "#ff00ff" {
		t.Errorf("dark accent = %q", s.Dark.Accent)
	}
	if s.Dark.Background != Default().Dark.Background {
		t.Errorf("unset colour should keep default, got %q", s.Dark.Background)
	}
	if s.Light != Default().Light {
		t.Errorf("light palette should be untouched")
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	t.Parallel()

	s, err := Load("nope", t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing skin")
	}
	if s.Name != "default" {
		t.Errorf("fallback skin = %q, want default", s.Name)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	if _, err := Parse("bad", []byte("light: [")); err == nil {
		t.Fatal("expected parse error")
	}
}
