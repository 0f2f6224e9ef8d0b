// Package main provides the entry point for the questlog CLI.
package main

import (
	"context"
	"os"

	"github.com/questlabs/questlog/internal/cli"
)

// Build information set at build time via ldflags.
//
//nolint:gochecknoglobals // Set by the linker
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(ctx, info); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
