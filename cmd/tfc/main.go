// Package main is the tfc command: it converts the leading whitespace and
// line endings of text files and reports per-file summaries.
package main

import (
	"fmt"
	"os"

	"github.com/PhilLockett/tfc/internal/cli"
	"github.com/PhilLockett/tfc/internal/config"
	"github.com/PhilLockett/tfc/internal/fsutil"
	"github.com/PhilLockett/tfc/internal/job"
	"github.com/PhilLockett/tfc/internal/ui"
)

func main() {
	// Load configuration (from defaults + ~/.config/tfc/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	osFS := fsutil.NewOSFileSystem()
	deps := cli.Dependencies{
		Config: cfg,
		FS:     osFS,
		Runner: job.NewRunner(osFS, cfg.MaxFileSize),
		Browse: ui.Run,
	}

	if err := cli.NewRootCommand(deps).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
