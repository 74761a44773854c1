package models

import "time"

// Completion is one record of a habit performed on a calendar day. Rows are
// append-only: once written they are never updated or deleted, and at most
// one point-bearing completion may exist per (habit, day).
type Completion struct {
	ID      string `json:"id"`
	HabitID string `json:"habit_id"`
	Day     string `json:"day"` // YYYY-MM-DD
	Points  int    `json:"points"`
	// Streak is the streak length in effect when the completion was logged.
	// Monthly reports read this snapshot rather than recomputing.
	Streak    int       `json:"streak"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
