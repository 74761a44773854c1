// Package eligibility decides, after each completion write, which periodic
// bonuses and milestone badges newly apply and grants them exactly once.
//
// The engine is a deterministic predicate over committed state: it always
// attempts the insert and lets the store's uniqueness constraint settle
// whether the milestone was already granted. A conflict is not an error;
// re-evaluation after every completion is expected to repeatedly "miss"
// milestones granted earlier.
package eligibility

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"habitual/internal/calendar"
	"habitual/internal/constants"
	"habitual/internal/models"
	"habitual/internal/storage"
)

// Grant codes. Threshold-parameterized codes (STREAK_n, COMPLETE_n,
// POINTS_n) are built with their threshold suffix.
const (
	CodeFirstStep         = "FIRST_STEP"
	CodeWeeklyConsistency = "WEEKLY_CONSISTENCY"
)

func StreakCode(n int) string     { return fmt.Sprintf("STREAK_%d", n) }
func CompletionCode(n int) string { return fmt.Sprintf("COMPLETE_%d", n) }
func PointsCode(n int) string     { return fmt.Sprintf("POINTS_%d", n) }

// Config carries the bonus value and milestone thresholds
type Config struct {
	WeeklyBonusPoints    int   `toml:"weekly_bonus_points"`
	StreakThresholds     []int `toml:"streak_thresholds"`
	CompletionThresholds []int `toml:"completion_thresholds"`
	PointsThresholds     []int `toml:"points_thresholds"`
}

// DefaultConfig returns the reference thresholds
func DefaultConfig() Config {
	return Config{
		WeeklyBonusPoints:    constants.WeeklyConsistencyBonus,
		StreakThresholds:     slices.Clone(constants.StreakBadgeThresholds),
		CompletionThresholds: slices.Clone(constants.CompletionBadgeThresholds),
		PointsThresholds:     slices.Clone(constants.PointsBadgeThresholds),
	}
}

// Engine evaluates grant rules. It holds no state of its own; all reads and
// writes go through the Provider it is handed, so running it inside a
// transaction-scoped view sees the just-written completion.
type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Evaluate runs all grant rules for a completion of habit on day with the
// given streak length. It must be called after the completion row is
// written (within the same transaction) and returns only the grants that
// were actually inserted by this call.
func (e *Engine) Evaluate(store storage.Provider, habit models.Habit, day time.Time, streakLength int) ([]models.Grant, error) {
	var granted []models.Grant

	add := func(g models.Grant) error {
		g.ID = uuid.New().String()
		g.Day = calendar.FormatDay(day)
		g.CreatedAt = time.Now()
		inserted, err := store.InsertGrant(g)
		if err != nil {
			return err
		}
		if inserted {
			granted = append(granted, g)
		}
		return nil
	}

	// First completion ever, across all habits.
	totalCompletions, err := store.TotalCompletions()
	if err != nil {
		return nil, err
	}
	if totalCompletions == 1 {
		if err := add(models.Grant{
			Code:   CodeFirstStep,
			Reason: "first habit completion ever logged",
		}); err != nil {
			return nil, err
		}
	}

	// Weekly consistency: completions in the event's ISO week reached the
	// habit's target. Keyed per (habit, week) via the period start.
	monday, sunday := calendar.WeekBounds(day)
	weekCount, err := store.CountCompletionsInRange(habit.ID, calendar.FormatDay(monday), calendar.FormatDay(sunday))
	if err != nil {
		return nil, err
	}
	if weekCount >= habit.FrequencyPerWeek {
		if err := add(models.Grant{
			Code:        CodeWeeklyConsistency,
			HabitID:     habit.ID,
			Points:      e.cfg.WeeklyBonusPoints,
			Reason:      fmt.Sprintf("weekly target met for %q: %d/%d", habit.Name, weekCount, habit.FrequencyPerWeek),
			PeriodStart: calendar.FormatDay(monday),
			PeriodEnd:   calendar.FormatDay(sunday),
		}); err != nil {
			return nil, err
		}
	}

	// Streak badges fire on exact equality: once, the day the threshold is
	// first reached, not on every day after.
	if slices.Contains(e.cfg.StreakThresholds, streakLength) {
		if err := add(models.Grant{
			Code:    StreakCode(streakLength),
			HabitID: habit.ID,
			Reason:  fmt.Sprintf("%d-day streak for %q", streakLength, habit.Name),
		}); err != nil {
			return nil, err
		}
	}

	// Lifetime completion-count badges, also exact equality.
	habitCount, err := store.CountCompletions(habit.ID)
	if err != nil {
		return nil, err
	}
	if slices.Contains(e.cfg.CompletionThresholds, habitCount) {
		if err := add(models.Grant{
			Code:    CompletionCode(habitCount),
			HabitID: habit.ID,
			Reason:  fmt.Sprintf("%d lifetime completions of %q", habitCount, habit.Name),
		}); err != nil {
			return nil, err
		}
	}

	// Account-wide point thresholds fire on first crossing; the uniqueness
	// constraint keeps later crossings silent.
	totalPoints, err := store.TotalPoints()
	if err != nil {
		return nil, err
	}
	for _, threshold := range e.cfg.PointsThresholds {
		if totalPoints < threshold {
			continue
		}
		if err := add(models.Grant{
			Code:   PointsCode(threshold),
			Reason: fmt.Sprintf("reached %d lifetime points", threshold),
		}); err != nil {
			return nil, err
		}
	}

	return granted, nil
}
