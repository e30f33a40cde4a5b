package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/flowgraphgo/internal/ctxlog"
	"github.com/vk/flowgraphgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// A failure to load vertex manifests is a fatal startup error.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if cfg.ManifestsPath != "" {
		if err := reg.LoadManifests(ctx, cfg.ManifestsPath); err != nil {
			panic(fmt.Errorf("failed to load vertex manifests: %w", err))
		}
		logger.Debug("Vertex manifests merged into registry.", "path", cfg.ManifestsPath)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
