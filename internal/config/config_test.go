package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/growthlab/growthnav/internal/model"
	"github.com/growthlab/growthnav/internal/nav"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigPath != "" {
		t.Errorf("ConfigPath = %q, want empty", cfg.ConfigPath)
	}
	if diff := cmp.Diff(model.DefaultSections(), cfg.Sections); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(model.DefaultExternalLink(), cfg.ExternalLink); diff != "" {
		t.Errorf("external link mismatch (-want +got):\n%s", diff)
	}
	if cfg.Title != model.DefaultTitle || cfg.Skin != model.DefaultSkin || cfg.APIAddr != model.DefaultAPIAddr {
		t.Errorf("unexpected scalar defaults: %+v", cfg)
	}
	if _, err := cfg.Registry(); err != nil {
		t.Errorf("default registry invalid: %v", err)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
title: Ops
skin: neon
log-file: ~/logs/nav.log
external-link:
  url: https://example.com/home
sections:
  - id: overview
    label: Overview
    icon: layout-dashboard
  - id: costs
    label: Costs
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
	}
	if cfg.ConfigDir != filepath.Dir(path) {
		t.Errorf("ConfigDir = %q", cfg.ConfigDir)
	}
	want := []model.SectionDescriptor{
		{ID: "overview", Label: "Overview", Icon: model.IconDashboard},
		{ID: "costs", Label: "Costs"},
	}
	if diff := cmp.Diff(want, cfg.Sections); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
	if cfg.ExternalLink.URL != "https://example.com/home" {
		t.Errorf("url = %q", cfg.ExternalLink.URL)
	}
	if cfg.ExternalLink.Tooltip != model.DefaultExternalTooltip {
		t.Errorf("tooltip should keep default, got %q", cfg.ExternalLink.Tooltip)
	}
	if filepath.Base(cfg.LogFile) != "nav.log" || cfg.LogFile[0] == '~' {
		t.Errorf("log-file not expanded: %q", cfg.LogFile)
	}
	if cfg.Title != "Ops" || cfg.Skin != "neon" {
		t.Errorf("title/skin = %q/%q", cfg.Title, cfg.Skin)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GROWTHNAV_EXTERNAL_LINK_URL", "https://env.example.com")
	t.Setenv("GROWTHNAV_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ExternalLink.URL != "https://env.example.com" {
		t.Errorf("url = %q", cfg.ExternalLink.URL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestRegistry_DuplicateSections(t *testing.T) {
	path := writeConfig(t, `
sections:
  - id: dashboard
    label: Dashboard
  - id: dashboard
    label: Copy
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = cfg.Registry()
	var cfgErr *nav.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Registry error = %v, want *ConfigurationError", err)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "sections: [\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
