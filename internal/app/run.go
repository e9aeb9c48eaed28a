package app

import (
	"context"
	"fmt"

	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/unit"
)

// Run resolves the configured target and renders the returned unit. With a
// metrics port configured it keeps serving until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx, requestID := ctxlog.WithRequestID(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	a.startHealthCheckServer()
	defer func() { _ = a.closeHealthCheckServer() }()

	req := unit.Request{
		Target: a.config.Target,
		Select: a.config.Select,
		Level:  a.config.Level,
	}
	if a.config.Package != "" {
		req.Caller = &unit.Caller{Package: a.config.Package}
	}

	h, err := a.engine.Resolve(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", a.config.Target, err)
	}
	logger.Info("Unit resolved.",
		"target", a.config.Target,
		"returned", h.Name().String(),
		"registered", a.registry.Len(),
	)

	if err := a.render(h); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	if a.httpServer != nil {
		logger.Info("Serving metrics until interrupted.", "request_id", requestID)
		<-ctx.Done()
	}

	logger.Debug("App.Run method finished.")
	return nil
}
