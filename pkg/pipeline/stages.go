package pipeline

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/spextract/pkg/logger"
	"github.com/dmitrymomot/spextract/pkg/progress"
)

// Stages is implemented by the extraction routines. Each call blocks until
// the stage has finished for the current subset.
type Stages interface {
	// LoadImage loads one subset: a single exposure in A mode, a pair in A-B mode.
	LoadImage(ctx context.Context, files []string, reductionMode string, cfg LoadConfig) error
	MakeSpatialProfiles(ctx context.Context, cfg ProfilesConfig) error
	LocateAperturePositions(ctx context.Context, cfg AperturesConfig) error
	SelectOrders(ctx context.Context, cfg OrdersConfig) error
	TraceApertures(ctx context.Context, cfg TraceConfig) error
	DefineApertureParameters(ctx context.Context, cfg ParametersConfig) error
	ExtractApertures(ctx context.Context, cfg ExtractConfig) error
}

// LoggingStages implements Stages by logging each call. It backs dry runs.
type LoggingStages struct {
	Logger *slog.Logger
}

func (s LoggingStages) log(ctx context.Context, ev progress.Event, attrs ...slog.Attr) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l := s.Logger
	if l == nil {
		l = slog.Default()
	}
	l.LogAttrs(ctx, slog.LevelInfo, "dry run", append([]slog.Attr{logger.Stage(string(ev))}, attrs...)...)
	return nil
}

func (s LoggingStages) LoadImage(ctx context.Context, files []string, reductionMode string, cfg LoadConfig) error {
	return s.log(ctx, progress.EventLoad,
		logger.Exposures(files),
		slog.String("reduction_mode", reductionMode),
		slog.String("flat_file", cfg.FlatFile),
		slog.String("wavecal_file", cfg.WavecalFile),
		slog.Bool("flat_field", cfg.FlatField),
		slog.Bool("linearity_correction", cfg.Linearity),
	)
}

func (s LoggingStages) MakeSpatialProfiles(ctx context.Context, cfg ProfilesConfig) error {
	return s.log(ctx, progress.EventProfiles)
}

func (s LoggingStages) LocateAperturePositions(ctx context.Context, cfg AperturesConfig) error {
	return s.log(ctx, progress.EventApertures,
		slog.String("method", cfg.Method),
		slog.Any("positions", cfg.Positions),
	)
}

func (s LoggingStages) SelectOrders(ctx context.Context, cfg OrdersConfig) error {
	return s.log(ctx, progress.EventOrders,
		slog.Any("include", cfg.Include),
		slog.Any("exclude", cfg.Exclude),
		slog.Bool("include_all", cfg.IncludeAll),
	)
}

func (s LoggingStages) TraceApertures(ctx context.Context, cfg TraceConfig) error {
	return s.log(ctx, progress.EventTrace,
		slog.Int("fit_degree", cfg.FitDegree),
		slog.Int("step_size", cfg.StepSize),
		slog.Float64("fwhm", cfg.FWHM),
	)
}

func (s LoggingStages) DefineApertureParameters(ctx context.Context, cfg ParametersConfig) error {
	return s.log(ctx, progress.EventParameters,
		slog.Any("aperture_radii", cfg.ApertureRadii),
		slog.Float64("bg_width", cfg.BGWidth),
	)
}

func (s LoggingStages) ExtractApertures(ctx context.Context, cfg ExtractConfig) error {
	return s.log(ctx, progress.EventExtract)
}
