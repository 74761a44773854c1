// Package cli holds the kong command structs. Commands do their own
// Store.Load and render results; all domain behavior lives in tracker and
// report.
package cli

import (
	"time"

	"habitual/internal/backup"
	"habitual/internal/calendar"
	"habitual/internal/config"
	"habitual/internal/logger"
	"habitual/internal/report"
	"habitual/internal/storage"
	"habitual/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Cfg     config.Config
	Tracker *tracker.Tracker
	Reports *report.Aggregator
}

// resolveDay parses an optional --date flag, defaulting to today.
func resolveDay(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return calendar.ParseDay(s)
}

// performAutomaticBackup snapshots the database before a mutating command.
// Failures are logged and swallowed; a broken backup path must not block
// writes.
func performAutomaticBackup(ctx *Context) {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
	}
}
