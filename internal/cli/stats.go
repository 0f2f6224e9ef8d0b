package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/questlabs/questlog/internal/stats"
	"github.com/questlabs/questlog/internal/tui"
)

// AddStatsCommand adds the stats command to the root command.
func AddStatsCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newStatsCmd(flags))
}

func newStatsCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show quest statistics",
		Long: `Roll the snapshot's quest collection up into trailing-window
statistics: counts by status, XP, success rate, average completion time,
most productive category, recent activity, and streaks.

Examples:
  questlog stats --snapshot records.yaml
  questlog stats --snapshot records.yaml --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd.Context(), flags, os.Stdout)
		},
	}
}

func runStats(_ context.Context, flags *GlobalFlags, w io.Writer) error {
	tui.CheckNoColor()

	sess, err := openSession(flags)
	if err != nil {
		return err
	}

	cfg := Configuration()
	agg := stats.New(stats.Options{
		WindowDays:       cfg.Stats.WindowDays,
		RecentWindowDays: cfg.Stats.RecentWindowDays,
		Clock:            sess.clock,
	})
	summary := agg.Aggregate(sess.snapshot.Quests())

	if flags.Output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	fmt.Fprint(w, tui.RenderSummary(summary))
	return nil
}
