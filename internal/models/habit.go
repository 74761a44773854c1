package models

import (
	"time"

	"habitual/internal/apperr"
)

// Difficulty is the weight class of a habit
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a user-supplied difficulty value
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", apperr.InvalidDifficulty(s)
}

// Habit represents a tracked recurring behavior. Habits are never hard
// deleted; deactivation hides them from day-status views while history
// stays queryable.
type Habit struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
	Cue              string     `json:"cue,omitempty"` // "if ..." trigger
	Difficulty       Difficulty `json:"difficulty"`
	FrequencyPerWeek int        `json:"frequency_per_week"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
}
