// Package skin holds the light and dark colour palettes shared by the
// terminal and browser hosts, and loads custom skins from YAML files.
package skin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Palette is one colour scheme. Values are hex colours ("#rrggbb").
type Palette struct {
	Background string `yaml:"background"`
	Surface    string `yaml:"surface"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Border     string `yaml:"border"`
	Accent     string `yaml:"accent"`
	AccentText string `yaml:"accent-text"`
	Tooltip    string `yaml:"tooltip"`
}

// Skin pairs a light and a dark palette. The shared theme flag picks one.
type Skin struct {
	Name  string  `yaml:"name"`
	Light Palette `yaml:"light"`
	Dark  Palette `yaml:"dark"`
}

// Palette returns the palette for the given theme flag.
func (s Skin) Palette(dark bool) Palette {
	if dark {
		return s.Dark
	}
	return s.Light
}

// Default mirrors the white / gray-900 sidebar with a blue-600 highlight.
func Default() Skin {
	return Skin{
		Name: "default",
		Light: Palette{
			Background: "#ffffff",
			Surface:    "#f3f4f6",
			Text:       "#374151",
			Muted:      "#6b7280",
			Border:     "#e5e7eb",
			Accent:     "#2563eb",
			AccentText: "#ffffff",
			Tooltip:    "#1f2937",
		},
		Dark: Palette{
			Background: "#111827",
			Surface:    "#1f2937",
			Text:       "#e5e7eb",
			Muted:      "#9ca3af",
			Border:     "#1f2937",
			Accent:     "#2563eb",
			AccentText: "#ffffff",
			Tooltip:    "#1f2937",
		},
	}
}

// Load returns the named skin. "default" (or "") is built in; any other name
// is read from <configDir>/skins/<name>.yml, with unset colours falling back
// to the default skin.
func Load(name, configDir string) (Skin, error) {
	if name == "" || name == "default" {
		return Default(), nil
	}

	path := filepath.Join(configDir, "skins", name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("skin %q not found at %s", name, path)
		}
		return Default(), fmt.Errorf("reading skin %q: %w", name, err)
	}
	return Parse(name, data)
}

// Parse decodes a YAML skin document over the default skin.
func Parse(name string, data []byte) (Skin, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing skin %q: %w", name, err)
	}
	if s.Name == "" || s.Name == "default" {
		s.Name = name
	}
	return s, nil
}
