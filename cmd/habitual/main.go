package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"habitual/internal/cli"
	"habitual/internal/config"
	"habitual/internal/constants"
	"habitual/internal/eligibility"
	"habitual/internal/logger"
	"habitual/internal/report"
	"habitual/internal/storage/sqlite"
	"habitual/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd `cmd:"" help:"Initialize habitual storage."`
	Habit struct {
		Add        cli.HabitAddCmd        `cmd:"" help:"Add a new habit."`
		List       cli.HabitListCmd       `cmd:"" help:"List habits."`
		Deactivate cli.HabitDeactivateCmd `cmd:"" help:"Deactivate a habit, keeping its history."`
	} `cmd:"" help:"Manage habits."`
	Log    cli.LogCmd    `cmd:"" help:"Log a habit completion."`
	Status cli.StatusCmd `cmd:"" help:"Show today's habits and streaks."`
	Badges cli.BadgesCmd `cmd:"" help:"List earned badges and bonuses."`
	Report cli.ReportCmd `cmd:"" help:"Show a monthly report."`
	Review cli.ReviewCmd `cmd:"" help:"Add or list weekly reviews."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with points, streaks, and badges"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(config.Path(CLI.Config))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := sqlite.NewStore(CLI.Config)
	appCtx := &cli.Context{
		Store:   store,
		Cfg:     cfg,
		Tracker: tracker.New(store, cfg.Scoring, eligibility.New(cfg.Eligibility)),
		Reports: report.NewAggregator(store, cfg.Rewards),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
