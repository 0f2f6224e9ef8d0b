package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/errors"
	"github.com/questlabs/questlog/internal/progress"
	"github.com/questlabs/questlog/internal/tui"
)

// AddGoalsCommand adds the goals command to the root command.
func AddGoalsCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newGoalsCmd(flags))
}

func newGoalsCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "goals [goal-id]",
		Short: "Classify goals by deadline pressure",
		Long: `Bucket the snapshot's goals into overdue, urgent, and on-track by
their time-window progress, or show the deadline window for one goal
when an ID is given.

Examples:
  questlog goals --snapshot records.yaml
  questlog goals goal-7 --snapshot records.yaml
  questlog goals --snapshot records.yaml --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goalID := ""
			if len(args) == 1 {
				goalID = args[0]
			}
			return runGoals(cmd.Context(), flags, goalID, os.Stdout)
		},
	}
}

// goalDetail is the JSON shape for a single goal's window report.
type goalDetail struct {
	Goal   domain.Goal               `json:"goal"`
	Window progress.TimeWindowResult `json:"window"`
}

func runGoals(ctx context.Context, flags *GlobalFlags, goalID string, w io.Writer) error {
	tui.CheckNoColor()

	sess, err := openSession(flags)
	if err != nil {
		return err
	}

	if goalID != "" {
		return runGoalDetail(flags, sess, goalID, w)
	}

	goals, err := sess.src.UserGoals(ctx)
	if err != nil {
		// The goal list is the primary fetch here; without it there is
		// nothing to classify.
		return errors.Wrap(errors.ErrGoalsUnavailable, err.Error())
	}

	overview := progress.ClassifyGoalsIn(goals, sess.now(), Configuration().Engine.UrgentWindowDays)

	if flags.Output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(overview)
	}
	fmt.Fprint(w, tui.RenderGoalOverview(overview))
	return nil
}

// runGoalDetail reports the deadline window for one goal by ID.
func runGoalDetail(flags *GlobalFlags, sess *session, goalID string, w io.Writer) error {
	g, err := sess.snapshot.Goal(goalID)
	if err != nil {
		return err
	}

	tw := progress.TimeWindowIn(&g, sess.now(), Configuration().Engine.UrgentWindowDays)

	if flags.Output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(goalDetail{Goal: g, Window: tw})
	}
	fmt.Fprintln(w, tui.RenderGoalCard(&g, tw))
	return nil
}
