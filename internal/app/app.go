package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/embergrid/internal/broker"
	"github.com/vk/embergrid/internal/ctxlog"
	"github.com/vk/embergrid/internal/engine"
	"github.com/vk/embergrid/internal/settings"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings *settings.Settings
	metrics  *metrics
	engine   *engine.Client
	listener *broker.Listener
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and metrics
// registry.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	s := settings.Default()
	if cfg.SettingsPath != "" {
		loaded, err := settings.Load(ctx, cfg.SettingsPath)
		if err != nil {
			// A failure to load settings is a fatal startup error.
			panic(fmt.Errorf("failed to load settings: %w", err))
		}
		s = loaded
	}
	if cfg.OutputPrefix != "" {
		s.Output.Prefix = cfg.OutputPrefix
	}
	logger.Debug("Settings resolved.", "engine_url", s.Engine.BaseURL, "broker_url", s.Broker.URL)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		settings: s,
		metrics:  newMetrics(),
		engine:   engine.NewClient(s.Engine.BaseURL, s.Engine.Timeout),
		listener: broker.NewListener(s.Broker.URL, s.Broker.Namespace),
	}
}

// Settings returns the application's resolved settings. This is primarily
// for testing.
func (a *App) Settings() *settings.Settings {
	return a.settings
}
