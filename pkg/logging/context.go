package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

// loggerKey is the context key for the logger.
const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx returns a logger from the context or the default logger.
// This is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithSourceFile adds the source document path to the logger in the context.
func WithSourceFile(ctx context.Context, path string) context.Context {
	logger := FromContext(ctx).With().Str("file", path).Logger()
	return WithLogger(ctx, &logger)
}

// WithRecord adds the record name to the logger in the context.
func WithRecord(ctx context.Context, name string) context.Context {
	logger := FromContext(ctx).With().Str("record", name).Logger()
	return WithLogger(ctx, &logger)
}
