package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/growthlab/growthnav/internal/config"
	"github.com/growthlab/growthnav/internal/diagnostics"
	"github.com/growthlab/growthnav/internal/icons"
	"github.com/growthlab/growthnav/internal/nav"
	"github.com/growthlab/growthnav/internal/skin"
	"github.com/growthlab/growthnav/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var skinName string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/growthnav/config.yml)")
	flag.StringVar(&skinName, "skin", "", "override the skin name")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("growthnav - navigation panel (terminal)\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if skinName != "" {
		cfg.Skin = skinName
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg config.Config) error {
	registry, err := cfg.Registry()
	if err != nil {
		var cfgErr *nav.ConfigurationError
		if errors.As(err, &cfgErr) {
			return fmt.Errorf("invalid sections in %s: %w", configSource(cfg), err)
		}
		return err
	}

	logger, err := diagnostics.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	sk, err := skin.Load(cfg.Skin, cfg.ConfigDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
		logger.Warn("skin not loaded", zap.String("skin", cfg.Skin), zap.Error(err))
		sk = skin.Default()
	}

	app, err := tui.NewApp(tui.AppDeps{
		Title:              cfg.Title,
		Registry:           registry,
		Theme:              nav.NewThemeContext(false),
		Skin:               sk,
		Navigator:          tui.NewBrowserNavigator(),
		Reporter:           diagnostics.NewLogReporter(logger),
		ExternalLink:       cfg.ExternalLink,
		Icons:              icons.Glyphs(),
		Logger:             logger,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
	})
	if err != nil {
		return err
	}

	logger.Info("starting terminal host",
		zap.String("version", version),
		zap.Int("sections", registry.Len()),
		zap.String("config", cfg.ConfigPath))

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	if app.NavigatedAway() {
		fmt.Printf("Opened %s\n", cfg.ExternalLink.URL)
	}
	return nil
}

func configSource(cfg config.Config) string {
	if cfg.ConfigPath == "" {
		return "defaults"
	}
	return cfg.ConfigPath
}
