package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/growthlab/growthnav/internal/config"
	"github.com/growthlab/growthnav/internal/diagnostics"
	"github.com/growthlab/growthnav/internal/httpserver"
	"github.com/growthlab/growthnav/internal/icons"
	"github.com/growthlab/growthnav/internal/nav"
	"github.com/growthlab/growthnav/internal/skin"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var addr string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/growthnav/config.yml)")
	flag.StringVar(&addr, "addr", "", "override the listen address")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("growthnav-web - navigation panel (browser)\n")
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
	if addr != "" {
		cfg.APIAddr = addr
	}

	if err := runServer(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cfg config.Config) error {
	registry, err := cfg.Registry()
	if err != nil {
		return err
	}

	// The browser host logs to stderr.
	logger, err := diagnostics.NewLogger(cfg.LogLevel, "")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sk, err := skin.Load(cfg.Skin, cfg.ConfigDir)
	if err != nil {
		logger.Warn("skin not loaded, using default", zap.String("skin", cfg.Skin), zap.Error(err))
		sk = skin.Default()
	}

	srv, err := httpserver.NewServer(httpserver.Deps{
		Addr:         cfg.APIAddr,
		Title:        cfg.Title,
		Registry:     registry,
		Theme:        nav.NewThemeContext(false),
		Reporter:     diagnostics.NewLogReporter(logger),
		ExternalLink: cfg.ExternalLink,
		Skin:         sk,
		Icons:        icons.Glyphs(),
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		select {
		case <-gctx.Done():
			return nil
		case err := <-srv.Errors():
			return fmt.Errorf("server failed: %w", err)
		}
	})

	fmt.Printf("growthnav listening on http://%s\n", srv.Addr())
	runErr := g.Wait()

	logger.Info("shutting down")
	if err := srv.Stop(); err != nil && runErr == nil {
		runErr = fmt.Errorf("server shutdown: %w", err)
	}
	return runErr
}
