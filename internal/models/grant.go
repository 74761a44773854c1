package models

import "time"

// Grant records that a milestone badge or periodic bonus was awarded. A
// given (code, habit scope) pair is granted at most once; for periodic
// bonuses, at most once per covered period. Grants are never revoked.
type Grant struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	// HabitID is empty for account-wide milestones
	HabitID string `json:"habit_id,omitempty"`
	Day     string `json:"day"` // award day, YYYY-MM-DD
	Points  int    `json:"points"`
	Reason  string `json:"reason"`
	// PeriodStart/PeriodEnd bound the covered period for periodic bonuses
	// and are empty for one-shot badges.
	PeriodStart string    `json:"period_start,omitempty"`
	PeriodEnd   string    `json:"period_end,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AccountWide reports whether the grant is scoped to the whole account
// rather than a single habit.
func (g Grant) AccountWide() bool {
	return g.HabitID == ""
}
