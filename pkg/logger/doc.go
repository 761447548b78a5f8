// Package logger builds slog loggers for the reduction tools.
//
// New returns a *slog.Logger configured by functional options: output format
// (text or json), minimum level, static attributes, and ContextExtractor
// callbacks that pull attributes from the context passed to the *Context
// logging methods. The run id stored with ContextWithRunID is extracted by
// default, so every record logged during a reduction run carries run_id.
//
// Attribute helpers in attr.go (Stage, Exposures, Subset, Caller, Duration,
// Error) keep key names consistent between the pipeline and the CLI.
//
//	log := logger.New(logger.WithVerbose(cfg.Verbose))
//	ctx := logger.ContextWithRunID(ctx, runID)
//	log.DebugContext(ctx, "stage complete", logger.Stage("trace_apertures"))
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
