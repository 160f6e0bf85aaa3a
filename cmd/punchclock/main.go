package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mlevkov/punchclock/internal/cli"
	"github.com/mlevkov/punchclock/internal/config"
	"github.com/mlevkov/punchclock/internal/db"
	"github.com/mlevkov/punchclock/internal/repository"
	"github.com/mlevkov/punchclock/internal/settings"
	"github.com/mlevkov/punchclock/internal/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	snapshots := repository.NewSQLiteSnapshotRepo(database)

	ctx := context.Background()
	trk := tracker.New(snapshots, nil, nil, nil)
	trk.Load(ctx)

	prefs := settings.NewService(snapshots, nil)
	prefs.Load(ctx)

	app := &cli.App{
		Tracker:  trk,
		Settings: prefs,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
