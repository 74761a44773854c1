package streak

import (
	"testing"
	"time"

	"habitual/internal/calendar"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestLength_FirstEverCompletion(t *testing.T) {
	asOf := mustDay(t, "2025-03-17")
	if got := Length(nil, asOf); got != 1 {
		t.Errorf("Length with no history = %d, want 1", got)
	}
	if got := Length([]string{}, asOf); got != 1 {
		t.Errorf("Length with empty history = %d, want 1", got)
	}
}

func TestLength_ConsecutiveDays(t *testing.T) {
	// Five consecutive days; computing the streak for each day in turn
	// (history = the preceding days) yields 1,2,3,4,5.
	days := []string{"2025-03-17", "2025-03-18", "2025-03-19", "2025-03-20", "2025-03-21"}
	for i, day := range days {
		got := Length(days[:i], mustDay(t, day))
		if got != i+1 {
			t.Errorf("Length on day %d = %d, want %d", i+1, got, i+1)
		}
	}
}

func TestLength_WeekendsCount(t *testing.T) {
	// Friday through Monday with no gap: streak 4 on Monday.
	history := []string{"2025-03-14", "2025-03-15", "2025-03-16"}
	if got := Length(history, mustDay(t, "2025-03-17")); got != 4 {
		t.Errorf("Length across a weekend = %d, want 4", got)
	}
}

func TestLength_GapResets(t *testing.T) {
	// Completion history stops two days before asOf: the streak resets to 1.
	history := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	if got := Length(history, mustDay(t, "2025-03-14")); got != 1 {
		t.Errorf("Length after gap = %d, want 1", got)
	}

	// A single missing day is enough to break the run.
	history = []string{"2025-03-11", "2025-03-12", "2025-03-14"}
	if got := Length(history, mustDay(t, "2025-03-15")); got != 2 {
		t.Errorf("Length with mid-run gap = %d, want 2", got)
	}
}

func TestLength_AsOfAlreadyPersisted(t *testing.T) {
	// Recomputing after the asOf completion was stored must not double-count.
	history := []string{"2025-03-16", "2025-03-17"}
	if got := Length(history, mustDay(t, "2025-03-17")); got != 2 {
		t.Errorf("Length with asOf persisted = %d, want 2", got)
	}
}

func TestObserved(t *testing.T) {
	history := []string{"2025-03-15", "2025-03-16", "2025-03-17"}

	if got := Observed(history, mustDay(t, "2025-03-17")); got != 3 {
		t.Errorf("Observed on completed day = %d, want 3", got)
	}
	// Nothing logged for asOf: the observed streak is 0, not 1.
	if got := Observed(history, mustDay(t, "2025-03-18")); got != 0 {
		t.Errorf("Observed on uncompleted day = %d, want 0", got)
	}
	if got := Observed(nil, mustDay(t, "2025-03-18")); got != 0 {
		t.Errorf("Observed with no history = %d, want 0", got)
	}
}
