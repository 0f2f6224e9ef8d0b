package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/tui"
)

// AddProgressCommand adds the progress command to the root command.
func AddProgressCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newProgressCmd(flags))
}

func newProgressCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "progress [quest-id]",
		Short: "Compute quest progress",
		Long: `Compute normalized progress for one quest, or for every quest in the
snapshot when no ID is given.

Examples:
  questlog progress --snapshot records.yaml
  questlog progress quest-42 --snapshot records.yaml
  questlog progress --snapshot records.yaml --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			questID := ""
			if len(args) == 1 {
				questID = args[0]
			}
			return runProgress(cmd.Context(), flags, questID, os.Stdout)
		},
	}
}

func runProgress(ctx context.Context, flags *GlobalFlags, questID string, w io.Writer) error {
	tui.CheckNoColor()

	sess, err := openSession(flags)
	if err != nil {
		return err
	}

	var quests []domain.Quest
	if questID != "" {
		q, err := sess.snapshot.Quest(questID)
		if err != nil {
			return err
		}
		quests = []domain.Quest{q}
	} else {
		quests = sess.snapshot.Quests()
	}

	logger := Logger()
	logger.Debug().Int("quests", len(quests)).Msg("computing progress")
	results := sess.engine.ComputeAll(ctx, quests)

	if flags.Output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for i := range quests {
		fmt.Fprintln(w, tui.RenderQuestCard(&quests[i], results[i]))
	}
	return nil
}
