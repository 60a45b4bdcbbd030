package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey is the private key type for logger attachment.
type ctxKey struct{}

//nolint:gochecknoglobals // Context keys are package-level by convention.
var loggerKey = ctxKey{}

// WithLogger attaches a logger to ctx. The command root attaches the
// configured logger once after flag parsing; command implementations read it
// back with FromContext rather than reaching for the package default.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to ctx, or the package default
// when ctx carries none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
