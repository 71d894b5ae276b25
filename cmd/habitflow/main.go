package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/nateharris/habitflow/internal/cli"
	"github.com/nateharris/habitflow/internal/constants"
	"github.com/nateharris/habitflow/internal/errors"
	"github.com/nateharris/habitflow/internal/logger"
	"github.com/nateharris/habitflow/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path (.db for SQLite, .json for a flat file)." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize habitflow storage."`
	Habit   cli.HabitCmd   `cmd:"" help:"Manage habits."`
	Log     cli.LogCmd     `cmd:"" help:"Record and inspect habit occurrences."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show streak, heatmap, weekday and hourly charts."`
	Export  cli.ExportCmd  `cmd:"" help:"Export all data as a JSON archive."`
	Import  cli.ImportCmd  `cmd:"" help:"Import a JSON archive."`
	Backups cli.BackupsCmd `cmd:"" help:"List available archives."`
	Clear   cli.ClearCmd   `cmd:"" help:"Delete all habits and logs."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Local habit tracker with streaks and activity charts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := storage.ExpandPath(CLI.Config)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := storage.New(configPath)
	appCtx := &cli.Context{
		Store: store,
		Now:   time.Now,
	}

	// Every command except init expects existing storage.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
