// Command spextract validates extraction settings and drives batch
// extraction over a set of exposures.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/spextract/pkg/logger"
)

// envPrefix is prepended to every environment variable the CLI reads.
const envPrefix = "SPEX_"

type globalFlags struct {
	verbose   bool
	logFormat string
	logLevel  string
}

type app struct {
	flags globalFlags
	log   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:   "spextract",
		Short: "Batch spectral extraction driver",
		Long: `spextract checks extraction parameters and runs the extraction stages
over a batch of exposures once the interactive reduction has been completed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := logger.ParseFormat(a.flags.logFormat)
			if err != nil {
				return err
			}
			level, err := logger.ParseLevel(a.flags.logLevel)
			if err != nil {
				return err
			}
			a.log = logger.New(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithFormat(format),
				logger.WithLevel(level),
				logger.WithVerbose(a.flags.verbose),
				logger.WithAttr(logger.Component("cli")),
			)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.flags.logFormat, "log-format", "text", "Log format: text or json")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "info", "Minimum log level")

	root.AddCommand(
		a.planCmd(),
		a.checkRangeCmd(),
		a.checkFilesCmd(),
		a.checkPathCmd(),
		a.runsCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
