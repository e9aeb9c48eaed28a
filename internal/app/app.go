package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/engine"
	"github.com/vk/hclimport/internal/finder"
	"github.com/vk/hclimport/internal/importgraph"
	"github.com/vk/hclimport/internal/metrics"
	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	ctx    context.Context

	registry *registry.Registry
	imports  *importgraph.Graph
	platform *platform.Provider
	engine   *engine.Engine
	metrics  *prometheus.Registry

	httpServer *http.Server
}

// NewApp is the constructor for the main application. Rendered results and
// unit print output go to outW, logs go to logW. Without explicit modules the
// core platform modules are installed.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...platform.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(modules) == 0 {
		modules = coreModules
	}
	provider := platform.New(modules...)
	logger.Debug("Platform modules registered.", "count", len(modules), "units", provider.Names())

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())

	var builderOpts []finder.BuilderOption
	if cfg.Namespaces {
		builderOpts = append(builderOpts, finder.WithNamespaceContainers())
	}
	imports := importgraph.New()
	engineOpts := []engine.Option{
		engine.WithSearchPath(cfg.SearchPaths...),
		engine.WithPlatform(provider),
		engine.WithBuilder(finder.NewBuilder(builderOpts...)),
		engine.WithMetrics(metrics.New(promReg)),
		engine.WithOutput(outW),
		engine.WithImportGraph(imports),
	}
	if cfg.StrictSelection {
		engineOpts = append(engineOpts, engine.WithStrictSelection())
	}

	reg := registry.New()
	eng := engine.New(reg, engineOpts...)
	logger.Debug("Engine created.", "search_path", cfg.SearchPaths)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		ctx:      ctx,
		registry: reg,
		imports:  imports,
		platform: provider,
		engine:   eng,
		metrics:  promReg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
