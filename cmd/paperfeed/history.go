package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperfeed/internal/archive"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived fetch runs",
	Long: `History reads the SQLite archive written by fetch --archive and prints
past runs, most recent first.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("archive", "data/feed.db", "path to the SQLite archive")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list (0 for all)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("archive")
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Runs(cmd.Context(), limit)
	if err != nil {
		return err
	}

	archive.FormatRuns(runs, os.Stdout)
	return nil
}
