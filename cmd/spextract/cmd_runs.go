package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/spextract/pkg/pipeline"
)

var errNoStorage = errors.New("run reports are disabled (SPEX_STORE_DRIVER=none)")

func (a *app) runsCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List saved run reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStorage(cmd.Context(), envFiles)
			if err != nil {
				return err
			}
			if st == nil {
				return errNoStorage
			}
			ids, err := pipeline.ListReports(cmd.Context(), st)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "Load environment from these .env files")

	show := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Print a saved run report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStorage(cmd.Context(), envFiles)
			if err != nil {
				return err
			}
			if st == nil {
				return errNoStorage
			}
			report, err := pipeline.LoadReport(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run %s: %s\n", report.RunID, report.Status)
			fmt.Fprintf(out, "started %s, finished %s\n", report.StartedAt.Format("2006-01-02 15:04:05"), report.FinishedAt.Format("2006-01-02 15:04:05"))
			if report.Error != "" {
				fmt.Fprintf(out, "error: %s\n", report.Error)
			}
			for _, s := range report.Subsets {
				fmt.Fprintf(out, "  %d: %s (%d stages)\n", s.Index, strings.Join(s.Files, ", "), len(s.Stages))
			}
			return nil
		},
	}
	cmd.AddCommand(show)
	return cmd
}
