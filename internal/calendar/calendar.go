// Package calendar holds the pure date arithmetic the scoring engine depends
// on: day parsing at calendar-day granularity, ISO week bounds, and calendar
// month bounds. All functions are stateless and timezone-agnostic (days are
// plain YYYY-MM-DD values).
package calendar

import (
	"fmt"
	"time"

	"habitual/internal/apperr"
	"habitual/internal/constants"
)

// ParseDay parses a YYYY-MM-DD string into a day value
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, apperr.InvalidDate(s)
	}
	return t, nil
}

// FormatDay renders a day value back to YYYY-MM-DD
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// PrevDay returns the calendar day before t
func PrevDay(t time.Time) time.Time {
	return t.AddDate(0, 0, -1)
}

// NextDay returns the calendar day after t
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// WeekBounds returns the Monday and Sunday of the ISO week containing t.
// ISO weeks run Monday through Sunday regardless of locale.
func WeekBounds(t time.Time) (monday, sunday time.Time) {
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	monday = t.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// MonthBounds returns the first and last day of the given calendar month,
// inclusive on both ends.
func MonthBounds(year, month int) (first, last time.Time, err error) {
	if month < 1 || month > 12 || year < 1 {
		return time.Time{}, time.Time{}, apperr.InvalidDate(formatMonth(year, month))
	}
	first = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last, nil
}

// ParseMonth parses a YYYY-MM period string
func ParseMonth(s string) (year, month int, err error) {
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return 0, 0, apperr.InvalidDate(s)
	}
	return t.Year(), int(t.Month()), nil
}

func formatMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
