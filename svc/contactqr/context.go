package contactqr

import (
	"context"
	"log/slog"
)

// runIDKey prevents collisions with other packages using context values
type runIDKey struct{}

// WithRunID tags ctx with an identifier for one generation run.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// LoggerExtractor returns a function that enriches log records with the run ID
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := RunIDFromContext(ctx); ok {
			return slog.String("run_id", id), true
		}
		return slog.Attr{}, false
	}
}
