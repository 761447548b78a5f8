package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/spextract/pkg/config"
	"github.com/dmitrymomot/spextract/pkg/logger"
	"github.com/dmitrymomot/spextract/pkg/pipeline"
	"github.com/dmitrymomot/spextract/pkg/progress"
	"github.com/dmitrymomot/spextract/pkg/validator"
)

type planFlags struct {
	configFile string
	envFiles   []string
	dryRun     bool
}

func (a *app) planCmd() *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "plan FILES",
		Short: "Validate the configuration and show the exposure subsets",
		Long: `Loads the batch configuration (defaults, then --config YAML, then SPEX_*
environment variables), validates it, and prints the subsets the extraction
stages would process.

FILES is an index string such as "1-8" in index mode, or a comma-separated
list of file names in filename mode.

With --dry-run the full driver runs with stages that only log their inputs,
and the run report is saved to the configured store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlan(cmd, f, args[0])
		},
	}

	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringSliceVar(&f.envFiles, "env-file", nil, "Load environment from these .env files")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Run the driver with logging stages")
	return cmd
}

func loadPipelineConfig(f planFlags) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if f.configFile != "" {
		path, err := validator.CheckPath(f.configFile, true)
		if err != nil {
			return cfg, err
		}
		f.configFile = path
	}
	err := config.Load(&cfg,
		config.WithPrefix(envPrefix),
		config.WithEnvFiles(f.envFiles...),
		config.WithYAMLFile(f.configFile),
	)
	return cfg, err
}

func (a *app) runPlan(cmd *cobra.Command, f planFlags, files string) error {
	cfg, err := loadPipelineConfig(f)
	if err != nil {
		return err
	}

	var stages pipeline.Stages = pipeline.LoggingStages{Logger: a.log}
	opts := []pipeline.Option{pipeline.WithLogger(a.log)}
	if f.dryRun {
		st, err := openStorage(cmd.Context(), f.envFiles)
		if err != nil {
			return err
		}
		if st != nil {
			opts = append(opts, pipeline.WithStorage(st))
		}
	}

	runner, err := pipeline.New(cfg, stages, opts...)
	if err != nil {
		printValidationErrors(cmd, err)
		return err
	}

	subsets, err := runner.Plan(files)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "reduction mode: %s\n", cfg.ReductionMode)
	fmt.Fprintf(out, "subsets: %d\n", len(subsets))
	for i, s := range subsets {
		fmt.Fprintf(out, "  %d: %s\n", i+1, strings.Join(s, ", "))
	}

	if !f.dryRun {
		return nil
	}

	// A dry run stands in for a completed interactive session.
	session := progress.New(progress.WithState(progress.Extracted))
	report, err := runner.Run(cmd.Context(), session, files)
	if report != nil {
		fmt.Fprintf(out, "run %s: %s (%d/%d subsets)\n", report.RunID, report.Status, report.Completed(), len(subsets))
		if report.Location != "" {
			fmt.Fprintf(out, "report: %s\n", report.Location)
		}
	}
	if err != nil {
		a.log.ErrorContext(cmd.Context(), "dry run failed", logger.Error(err))
	}
	return err
}

func printValidationErrors(cmd *cobra.Command, err error) {
	for _, ve := range validator.ExtractValidationErrors(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", ve.Field, ve.Message)
	}
}
