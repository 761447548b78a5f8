package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/spextract/pkg/logger"
	"github.com/dmitrymomot/spextract/pkg/progress"
	"github.com/dmitrymomot/spextract/pkg/store"
)

// Runner drives the extraction stages over a batch of exposures.
// A Runner may be reused, but Run calls must not overlap.
type Runner struct {
	cfg     Config
	stages  Stages
	log     *slog.Logger
	storage store.Storage
	verbose bool
	now     func() time.Time
	newID   func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithStorage saves each run report to s.
func WithStorage(s store.Storage) Option {
	return func(r *Runner) {
		r.storage = s
	}
}

// WithVerbose overrides Config.Verbose.
func WithVerbose(verbose bool) Option {
	return func(r *Runner) {
		r.verbose = verbose
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// WithRunIDGenerator replaces the uuid run id source.
func WithRunIDGenerator(gen func() string) Option {
	return func(r *Runner) {
		if gen != nil {
			r.newID = gen
		}
	}
}

// New validates cfg and returns a Runner.
func New(cfg Config, stages Stages, opts ...Option) (*Runner, error) {
	if stages == nil {
		return nil, ErrNilStages
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	r := &Runner{
		cfg:     cfg,
		stages:  stages,
		log:     slog.Default(),
		verbose: cfg.Verbose,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("pipeline"))
	return r, nil
}

// Config returns the configuration the Runner was built with.
func (r *Runner) Config() Config {
	return r.cfg
}

// Plan expands files and groups them into the subsets Run would process.
func (r *Runner) Plan(files string) ([][]string, error) {
	names, err := ExpandFiles(r.cfg, files)
	if err != nil {
		return nil, err
	}
	return GroupExposures(r.cfg.ReductionMode, names)
}

type step struct {
	event progress.Event
	run   func(ctx context.Context) error
}

func (r *Runner) steps(files []string) []step {
	cfg := r.cfg
	return []step{
		{progress.EventLoad, func(ctx context.Context) error {
			return r.stages.LoadImage(ctx, files, cfg.ReductionMode, cfg.Load)
		}},
		{progress.EventProfiles, func(ctx context.Context) error {
			return r.stages.MakeSpatialProfiles(ctx, cfg.Profiles)
		}},
		{progress.EventApertures, func(ctx context.Context) error {
			return r.stages.LocateAperturePositions(ctx, cfg.Apertures)
		}},
		{progress.EventOrders, func(ctx context.Context) error {
			return r.stages.SelectOrders(ctx, cfg.Orders)
		}},
		{progress.EventTrace, func(ctx context.Context) error {
			return r.stages.TraceApertures(ctx, cfg.Trace)
		}},
		{progress.EventParameters, func(ctx context.Context) error {
			return r.stages.DefineApertureParameters(ctx, cfg.Parameters)
		}},
		{progress.EventExtract, func(ctx context.Context) error {
			return r.stages.ExtractApertures(ctx, cfg.Extract)
		}},
	}
}

// Run processes every subset of files through all seven stages.
//
// session must show a completed interactive extraction, otherwise
// ErrPreviousStepsIncomplete is returned and nothing runs. The returned
// Report covers the stages that ran, also when err is non-nil. A stage
// failure is returned as a *StageError.
func (r *Runner) Run(ctx context.Context, session *progress.Tracker, files string) (*Report, error) {
	if session == nil || !session.Done() {
		r.log.WarnContext(ctx, "previous steps not completed")
		return nil, ErrPreviousStepsIncomplete
	}

	subsets, err := r.Plan(files)
	if err != nil {
		return nil, err
	}

	runID := r.newID()
	ctx = logger.ContextWithRunID(ctx, runID)

	report := &Report{
		RunID:         runID,
		ReductionMode: r.cfg.ReductionMode,
		FileReadMode:  r.cfg.FileReadMode,
		Status:        StatusRunning,
		StartedAt:     r.now().UTC(),
	}

	r.log.InfoContext(ctx, "batch extraction started",
		slog.Int("subsets", len(subsets)),
		slog.String("reduction_mode", r.cfg.ReductionMode),
	)

	runErr := r.run(ctx, report, subsets)
	report.finish(r.now().UTC(), runErr)

	if r.storage != nil {
		if err := report.Save(ctx, r.storage); err != nil {
			r.log.ErrorContext(ctx, "failed to save run report", logger.Error(err))
			runErr = errors.Join(runErr, err)
		}
	}

	if runErr != nil {
		r.log.ErrorContext(ctx, "batch extraction failed", logger.Error(runErr))
		return report, runErr
	}

	r.log.InfoContext(ctx, "batch extraction finished",
		slog.Int("subsets", len(subsets)),
		logger.Duration(report.FinishedAt.Sub(report.StartedAt)),
	)
	return report, nil
}

func (r *Runner) run(ctx context.Context, report *Report, subsets [][]string) error {
	for i, files := range subsets {
		if err := ctx.Err(); err != nil {
			return err
		}

		subset := SubsetReport{Index: i + 1, Files: files}
		err := r.runSubset(ctx, &subset, len(subsets))
		report.Subsets = append(report.Subsets, subset)
		if err != nil {
			return err
		}

		if r.verbose {
			r.log.InfoContext(ctx, "do all steps complete", logger.Subset(i+1, len(subsets)), logger.Exposures(files))
		}
	}
	return nil
}

func (r *Runner) runSubset(ctx context.Context, subset *SubsetReport, total int) error {
	tracker := progress.New(progress.WithAction(func(ctx context.Context, from, to progress.State, ev progress.Event) error {
		r.log.DebugContext(ctx, "stage complete",
			logger.Stage(string(ev)),
			logger.Subset(subset.Index, total),
			slog.String("state", string(to)),
		)
		return nil
	}))

	r.log.DebugContext(ctx, "processing subset", logger.Subset(subset.Index, total), logger.Exposures(subset.Files))

	for _, s := range r.steps(subset.Files) {
		if err := ctx.Err(); err != nil {
			return err
		}

		started := r.now()
		if err := s.run(ctx); err != nil {
			return &StageError{Stage: s.event, Subset: subset.Index, Files: subset.Files, Err: err}
		}
		subset.Stages = append(subset.Stages, StageReport{Stage: string(s.event), Duration: r.now().Sub(started)})

		if err := tracker.Fire(ctx, s.event); err != nil {
			return err
		}
	}
	return nil
}
