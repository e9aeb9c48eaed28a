// Package ctxlog provides a context key for safely passing a slog.Logger
// instance through context.Context.
package ctxlog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// key is an unexported type to prevent collisions with context keys from other packages.
type key int

const (
	loggerKey key = iota
	requestIDKey
)

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the slog.Logger from a context. If no logger is
// found, it returns the default global logger.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithRequestID tags the context with a fresh request id and returns a context
// whose logger carries it as the "request_id" attribute. A context that is
// already tagged is returned unchanged.
func WithRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := RequestID(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	ctx = context.WithValue(ctx, requestIDKey, id)
	return WithLogger(ctx, FromContext(ctx).With("request_id", id)), id
}

// RequestID returns the request id stored by WithRequestID, if any.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
