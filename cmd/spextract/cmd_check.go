package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/spextract/pkg/logger"
	"github.com/dmitrymomot/spextract/pkg/validator"
)

var errNoValues = errors.New("no values to check: use --values or pass them after --")

func (a *app) checkRangeCmd() *cobra.Command {
	var (
		values []float64
		bound  []float64
		mode   string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "check-range [--values V,...] [-- VALUE...]",
		Short: "Check numeric values against a bound",
		Long: `Checks every value against the bound using the given comparison mode.

Values are given with --values, or as arguments after "--" so that negative
numbers are not read as flags.`,
		Example: `  spextract check-range --values 5 --bound 0,10 --mode gele
  spextract check-range --values 1,-2,3 --bound 0 --mode gt --name fwhm
  spextract check-range --bound -5,0 --mode gele -- -1 -3.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := append([]float64(nil), values...)
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("value %q is not a number", arg)
				}
				all = append(all, v)
			}
			if len(all) == 0 {
				return errNoValues
			}

			m, err := validator.ParseMode(mode)
			if err != nil {
				return err
			}

			if err := validator.CheckRange(validator.Of(all), validator.Of(bound), m, name); err != nil {
				a.log.DebugContext(cmd.Context(), "range check failed", logger.Caller("check-range"), logger.Error(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&values, "values", nil, "Comma-separated values to check")
	cmd.Flags().Float64SliceVar(&bound, "bound", nil, "Bound: one value for single-sided modes, lower,upper for double-sided")
	cmd.Flags().StringVar(&mode, "mode", string(validator.ModeGeLe), "Comparison mode: gt, ge, lt, le, gtlt, gtle, gelt, gele")
	cmd.Flags().StringVar(&name, "name", "", "Name used in error messages")
	_ = cmd.MarkFlagRequired("bound")
	return cmd
}

func (a *app) checkFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-files PATTERN...",
		Short: "Resolve each glob pattern to exactly one file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := validator.CheckFiles(args...)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

func (a *app) checkPathCmd() *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:   "check-path PATH",
		Short: "Check that a file or directory exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := validator.CheckPath(args[0], absolute)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&absolute, "absolute", false, "Print the absolute path")
	return cmd
}
