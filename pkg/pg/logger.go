package pg

import "context"

// logger defines the interface required for migration logging.
// *slog.Logger satisfies it directly.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
