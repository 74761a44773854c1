package models

import "time"

// HabitTotals is one row of the monthly per-habit breakdown
type HabitTotals struct {
	HabitID     string `json:"habit_id"`
	Name        string `json:"name"`
	Completions int    `json:"completions"`
	Points      int    `json:"points"`
}

// MonthlyReport is a derived view over one calendar month. It is computed on
// demand from stored completions and grants and never persisted.
type MonthlyReport struct {
	Period         string        `json:"period"` // YYYY-MM
	Points         int           `json:"points"` // completion + grant points
	Completions    int           `json:"completions"`
	DistinctHabits int           `json:"distinct_habits"`
	BestStreak     int           `json:"best_streak"` // max stored snapshot
	TopHabits      []HabitTotals `json:"top_habits"`
	Grants         []Grant       `json:"grants"`
	RewardTier     string        `json:"reward_tier"`
	RewardText     string        `json:"reward_text"`
}

// WeeklyReview is a free-text reflection attached to an ISO week
type WeeklyReview struct {
	ID        string    `json:"id"`
	WeekStart string    `json:"week_start"` // Monday, YYYY-MM-DD
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
