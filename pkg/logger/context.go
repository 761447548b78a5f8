package logger

import (
	"context"
	"log/slog"
)

type runIDKey struct{}

// ContextWithRunID stores the reduction run id in ctx.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id stored by ContextWithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// RunIDExtractor adds run_id to records logged with a run-scoped context.
// New registers it by default.
func RunIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := RunIDFromContext(ctx); ok {
		return RunID(id), true
	}
	return slog.Attr{}, false
}
