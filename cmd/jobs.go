package cmd

import (
	"context"
	"fmt"

	"cfbPickem/scheduler/scheduler_jobs"

	"github.com/spf13/cobra"
)

func resetCommand(runtime func() *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete and re-import FBS teams and conferences",
		Long:  "Runs deleteTeams, deleteConferences, importConferences and importTeams in order, stopping at the first failure.",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runtime().Importer().RunAll(commandContext(cmd))
			for _, r := range results {
				line := "✅ " + r.Step
				if r.Deleted != nil {
					line += fmt.Sprintf(" deleted=%d", *r.Deleted)
				}
				if r.Imported != nil {
					line += fmt.Sprintf(" imported=%d skipped=%d", *r.Imported, *r.Skipped)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return err
		},
	}
}

func refreshLinesCommand(runtime func() *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh-lines",
		Short: "Refresh spreads for weeks still open for picks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return scheduler_jobs.CheckLines(commandContext(cmd), runtime().JobDeps())
		},
	}
}

func recordResultsCommand(runtime func() *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "record-results",
		Short: "Store final scores and settle winners against the spread",
		RunE: func(cmd *cobra.Command, args []string) error {
			return scheduler_jobs.CheckGameEnd(commandContext(cmd), runtime().JobDeps())
		},
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
