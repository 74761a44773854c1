// Package streak computes unbroken runs of completion days. Both functions
// are pure: they operate on the set of days the store reports, never on the
// store itself, so callers decide what history they feed in.
package streak

import (
	"time"

	"habitual/internal/calendar"
)

// Length returns the streak in effect for a completion on asOf: the number
// of consecutive calendar days ending at asOf with at least one point-bearing
// completion. asOf itself counts whether or not it is already present in
// days, since the caller is logging (or has just logged) that day's
// completion.
// With no prior history the result is 1, never 0: a first-ever completion is
// a streak of one.
func Length(days []string, asOf time.Time) int {
	present := daySet(days)

	n := 1
	cursor := calendar.PrevDay(asOf)
	for {
		if _, ok := present[calendar.FormatDay(cursor)]; !ok {
			break
		}
		n++
		cursor = calendar.PrevDay(cursor)
	}
	return n
}

// Observed returns the recorded streak ending at asOf: consecutive days with
// a completion counting backward from asOf itself. Unlike Length it does not
// assume a completion on asOf, so a day with nothing logged yields 0. Used
// by day-status views.
func Observed(days []string, asOf time.Time) int {
	present := daySet(days)

	n := 0
	cursor := asOf
	for {
		if _, ok := present[calendar.FormatDay(cursor)]; !ok {
			break
		}
		n++
		cursor = calendar.PrevDay(cursor)
	}
	return n
}

func daySet(days []string) map[string]struct{} {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}
