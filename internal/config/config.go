// Package config loads growthnav settings from defaults, an optional YAML
// file, and GROWTHNAV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/growthlab/growthnav/internal/diagnostics"
	"github.com/growthlab/growthnav/internal/model"
	"github.com/growthlab/growthnav/internal/nav"
)

// Config holds settings shared by the terminal and browser hosts.
type Config struct {
	Title              string                    `mapstructure:"title"`
	Sections           []model.SectionDescriptor `mapstructure:"sections"`
	ExternalLink       model.ExternalLink        `mapstructure:"external-link"`
	Skin               string                    `mapstructure:"skin"`
	LogLevel           string                    `mapstructure:"log-level"`
	LogFile            string                    `mapstructure:"log-file"`
	APIAddr            string                    `mapstructure:"api-addr"`
	ReverseScrollWheel bool                      `mapstructure:"reverse-scroll-wheel"`

	// ConfigPath is the file actually read, empty when none was found.
	ConfigPath string `mapstructure:"-"`
	// ConfigDir holds skins/ and the default config file.
	ConfigDir string `mapstructure:"-"`
}

// DefaultConfigDir returns $HOME/.config/growthnav.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "growthnav"), nil
}

// Load reads configuration. An empty configPath means
// $HOME/.config/growthnav/config.yml; a missing file is not an error.
func Load(configPath string) (Config, error) {
	var cfg Config

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "growthnav")

	v := viper.New()
	v.SetEnvPrefix("GROWTHNAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	link := model.DefaultExternalLink()
	v.SetDefault("title", model.DefaultTitle)
	v.SetDefault("sections", model.DefaultSections())
	v.SetDefault("external-link.url", link.URL)
	v.SetDefault("external-link.label", link.Label)
	v.SetDefault("external-link.tooltip", link.Tooltip)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-file", diagnostics.DefaultLogPath())
	v.SetDefault("api-addr", model.DefaultAPIAddr)
	v.SetDefault("reverse-scroll-wheel", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		configDir = filepath.Dir(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else {
		cfg.ConfigPath = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigDir = configDir

	if strings.HasPrefix(cfg.LogFile, "~/") {
		cfg.LogFile = filepath.Join(home, cfg.LogFile[2:])
	}
	if cfg.ExternalLink.Label == "" {
		cfg.ExternalLink.Label = model.DefaultExternalLabel
	}

	return cfg, nil
}

// Registry validates the configured sections.
func (c Config) Registry() (*nav.Registry, error) {
	return nav.NewRegistry(c.Sections)
}
