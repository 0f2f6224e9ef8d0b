package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/questlabs/questlog/internal/config"
	"github.com/questlabs/questlog/internal/errors"
	"github.com/questlabs/questlog/internal/tui"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// newRootCmd creates and returns the root command for the questlog CLI.
// This function-based approach avoids package-level command globals,
// keeping the command tree testable.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "questlog",
		Short: "questlog - goal and quest progress engine",
		Long: `questlog computes normalized progress and rollup statistics from
goal, task, and quest records.

It reads a record snapshot (the same data the goal and task services
would serve) and derives completion percentages, status, completion-date
estimates, and trailing-window statistics.`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without
		// subcommands, ensuring PersistentPreRunE still validates flags.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}
			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			setGlobalConfig(cfg)

			InitLogger(flags.Verbose, flags.Quiet, cfg.Log)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			CloseLogFile()
		},
		// SilenceUsage and SilenceErrors prevent cobra's own printing on
		// error; Execute surfaces errors as user-facing messages instead.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	AddGlobalFlags(cmd, flags)

	AddProgressCommand(cmd, flags)
	AddStatsCommand(cmd, flags)
	AddGoalsCommand(cmd, flags)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
// Errors are printed as user-facing messages with an actionable hint when
// one exists, and returned for exit-code mapping.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		printUserError(cmd.ErrOrStderr(), err)
	}
	return err
}

// printUserError writes an error the way a user should read it: the mapped
// message for known sentinels (falling back to the raw error text), plus the
// suggested next step when the taxonomy has one.
func printUserError(w io.Writer, err error) {
	fmt.Fprintln(w, tui.ErrorStyle.Render("✗ "+errors.UserMessage(err)))
	if action := errors.Actionable(err); action != "" {
		fmt.Fprintln(w, tui.MutedStyle.Render("  ▸ "+action))
	}
}
