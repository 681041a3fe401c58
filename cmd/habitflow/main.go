package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mwei/habitflow/internal/cli"
	"github.com/mwei/habitflow/internal/config"
	"github.com/mwei/habitflow/internal/logger"
	"github.com/mwei/habitflow/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	Backend string `help:"Override the storage backend (file or sqlite)." default:""`
	DataDir string `help:"Override the data directory." type:"path" default:""`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habitflow configuration."`
	Habit  cli.HabitCmd  `cmd:"" help:"Manage habits."`
	Record cli.RecordCmd `cmd:"" help:"Record daily habit values."`
	Todo   cli.TodoCmd   `cmd:"" help:"Manage the todo list."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show aggregated progress."`
	Export cli.ExportCmd `cmd:"" help:"Export all data to a JSON file."`
	Import cli.ImportCmd `cmd:"" help:"Replace all data from a JSON file."`
	Backup cli.BackupCmd `cmd:"" help:"Create, list, and restore snapshot backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run data integrity diagnostics."`
	Reset  cli.ResetCmd  `cmd:"" help:"Delete all stored data."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitflow"),
		kong.Description("Personal habit tracker with local-only storage"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Backend != "" {
		cfg.Backend = CLI.Backend
	}
	if CLI.DataDir != "" {
		cfg.DataDir = CLI.DataDir
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: cfg.GetDataDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	repo, err := cfg.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	st := store.New(repo)
	if err := st.LoadInitialData(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{Store: st, Repo: repo, DataDir: cfg.GetDataDir()}
	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
