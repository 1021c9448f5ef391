package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/loomgo/internal/config"
	"github.com/vk/loomgo/internal/ctxlog"
	"github.com/vk/loomgo/internal/design"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *design.Registry
	model    *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and design registry.
func NewApp(outW io.Writer, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ProjectPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.", "project", model.Project.Name)

	return &App{
		outW:     outW,
		logger:   logger,
		registry: design.NewRegistry(),
		model:    model,
	}
}

// Model returns the loaded project model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
