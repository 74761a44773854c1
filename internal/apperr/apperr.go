// Package apperr defines the recoverable error conditions the core can
// produce. Callers match them with errors.Is; every constructor wraps the
// sentinel with enough context (habit reference, date, offending value) to
// present a message.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("habit not found")
	ErrDuplicateName       = errors.New("habit name already exists")
	ErrDuplicateCompletion = errors.New("completion already recorded for this date")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInvalidDifficulty   = errors.New("invalid difficulty")
	ErrInvalidFrequency    = errors.New("invalid frequency")
)

func NotFound(ref string) error {
	return fmt.Errorf("%q: %w", ref, ErrNotFound)
}

func DuplicateName(name string) error {
	return fmt.Errorf("%q: %w", name, ErrDuplicateName)
}

func DuplicateCompletion(habitRef, day string) error {
	return fmt.Errorf("%s on %s: %w", habitRef, day, ErrDuplicateCompletion)
}

func InvalidDate(value string) error {
	return fmt.Errorf("%q (expected YYYY-MM-DD): %w", value, ErrInvalidDate)
}

func InvalidDifficulty(value string) error {
	return fmt.Errorf("%q (expected easy, medium, or hard): %w", value, ErrInvalidDifficulty)
}

func InvalidFrequency(value int) error {
	return fmt.Errorf("%d (expected 1..7 times per week): %w", value, ErrInvalidFrequency)
}
