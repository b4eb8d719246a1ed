package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/vk/datastage/internal/ctxlog"
	"github.com/vk/datastage/internal/datatable"
	"github.com/vk/datastage/internal/loader"
	"github.com/vk/datastage/internal/resourcefs"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	result *loader.Result
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}

// Run executes one load session against the configured mods directory and
// prints a per-kind summary of the resulting table.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var resources datatable.ResourceValidator
	if a.config.ResourceDir != "" {
		resources = resourcefs.New(a.config.ResourceDir)
	}

	result, err := loader.Run(ctx, loader.Options{
		ModsDir:   a.config.ModsDir,
		Resources: resources,
	})
	if err != nil {
		return fmt.Errorf("load session failed: %w", err)
	}
	a.result = result

	for _, m := range result.Mods {
		fmt.Fprintf(a.outW, "loaded %s %s\n", m.Name, m.Release.Version)
	}

	counts := result.Table.Counts()
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(a.outW, "%-24s %d\n", kind, counts[datatable.Kind(kind)])
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// Result returns the outcome of the last Run. This is primarily for testing.
func (a *App) Result() *loader.Result {
	return a.result
}
