package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"mkvswap/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent scan runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := requireHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No scan runs recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					formatRunTime(run.StartedAt),
					run.Root,
					strconv.Itoa(run.FilesSeen),
					strconv.Itoa(run.Successes),
					strconv.Itoa(run.Warnings),
					yesNo(run.DryRun),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Run ID", "Started", "Root", "Files", "Remuxed", "Warnings", "Dry Run"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to list")

	cmd.AddCommand(newHistoryShowCommand(ctx))

	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the per-file outcomes of a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := requireHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			outcomes, err := store.RunOutcomes(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("load run outcomes: %w", err)
			}
			if len(outcomes) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No outcomes recorded for run %s\n", args[0])
				return nil
			}

			rows := make([][]string, 0, len(outcomes))
			for _, outcome := range outcomes {
				rows = append(rows, []string{
					outcome.Path,
					outcome.Outcome,
					outcome.Reason,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Path", "Outcome", "Reason"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
}

func requireHistory(ctx *commandContext) (*history.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if !cfg.History.Enabled {
		return nil, fmt.Errorf("history is disabled in the configuration")
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

func formatRunTime(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format("2006-01-02 15:04:05")
}
