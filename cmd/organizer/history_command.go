package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jensettl/folder-organizer/internal/config"
	"github.com/jensettl/folder-organizer/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the recorded operation history",
	}
	cmd.AddCommand(newHistoryListCommand(ctx))
	cmd.AddCommand(newHistoryStatsCommand(ctx))
	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var (
		limit   int
		session string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded operations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			var ops []history.Operation
			if session != "" {
				ops, err = store.BySession(cmd.Context(), session)
			} else {
				ops, err = store.Recent(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(ops) == 0 {
				fmt.Fprintln(out, "No operations recorded.")
				return nil
			}

			rows := make([][]string, 0, len(ops))
			for _, op := range ops {
				detail := op.Destination
				if detail == "" {
					detail = op.Reason
				}
				if op.ErrorText != "" {
					detail = op.ErrorText
				}
				mode := ""
				if op.DryRun {
					mode = "dry run"
				}
				rows = append(rows, []string{
					op.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					op.Outcome,
					op.Source,
					op.Category,
					detail,
					mode,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Time", "Outcome", "Source", "Category", "Detail", "Mode"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of operations to show")
	cmd.Flags().StringVar(&session, "session", "", "Show one session's operations in run order")

	return cmd
}

func newHistoryStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show operation counts grouped by outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, "No operations recorded.")
				return nil
			}

			outcomes := make([]string, 0, len(stats))
			for outcome := range stats {
				outcomes = append(outcomes, outcome)
			}
			sort.Strings(outcomes)

			rows := make([][]string, 0, len(outcomes))
			total := 0
			for _, outcome := range outcomes {
				rows = append(rows, []string{outcome, strconv.Itoa(stats[outcome])})
				total += stats[outcome]
			}
			rows = append(rows, []string{"total", strconv.Itoa(total)})
			fmt.Fprintln(out, renderTable([]string{"Outcome", "Operations"}, rows, 2))
			return nil
		},
	}
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !assumeYes {
				return fmt.Errorf("history clear is destructive; re-run with --yes to confirm")
			}
			_, store, err := openHistory(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d operation(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Confirm deletion")

	return cmd
}

func openHistory(ctx *commandContext) (*config.Config, *history.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if !cfg.History.Enabled {
		return nil, nil, fmt.Errorf("history is disabled in the configuration")
	}
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("open history database: %w", err)
	}
	return cfg, store, nil
}
