package tracker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"habitual/internal/apperr"
	"habitual/internal/calendar"
	"habitual/internal/eligibility"
	"habitual/internal/models"
	"habitual/internal/scoring"
	"habitual/internal/storage"
	"habitual/internal/storage/sqlite"
)

func setupTracker(t *testing.T) (*Tracker, storage.Provider) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "habitual.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store, scoring.DefaultConfig(), eligibility.New(eligibility.DefaultConfig())), store
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := calendar.ParseDay(s)
	if err != nil {
		t.Fatalf("bad day %q: %v", s, err)
	}
	return d
}

func grantCodes(grants []models.Grant) map[string]bool {
	set := make(map[string]bool, len(grants))
	for _, g := range grants {
		set[g.Code] = true
	}
	return set
}

func TestAddHabit_Validation(t *testing.T) {
	tr, _ := setupTracker(t)

	if _, err := tr.AddHabit("read", "", "", "extreme", 3); !errors.Is(err, apperr.ErrInvalidDifficulty) {
		t.Errorf("difficulty 'extreme': got %v, want ErrInvalidDifficulty", err)
	}
	for _, freq := range []int{0, 8, -1} {
		if _, err := tr.AddHabit("read", "", "", "easy", freq); !errors.Is(err, apperr.ErrInvalidFrequency) {
			t.Errorf("frequency %d: got %v, want ErrInvalidFrequency", freq, err)
		}
	}

	h, err := tr.AddHabit("  read  ", "evening reading", "after dinner", "medium", 5)
	if err != nil {
		t.Fatalf("valid habit rejected: %v", err)
	}
	if h.Name != "read" {
		t.Errorf("name not trimmed: %q", h.Name)
	}
	if !h.Active {
		t.Error("new habit not active")
	}

	if _, err := tr.AddHabit("read", "", "", "easy", 3); !errors.Is(err, apperr.ErrDuplicateName) {
		t.Errorf("duplicate name: got %v, want ErrDuplicateName", err)
	}
}

func TestDeactivate(t *testing.T) {
	tr, _ := setupTracker(t)
	h, err := tr.AddHabit("stretch", "", "", "easy", 7)
	if err != nil {
		t.Fatal(err)
	}

	got, err := tr.Deactivate("stretch")
	if err != nil {
		t.Fatalf("deactivate by name failed: %v", err)
	}
	if got.ID != h.ID || got.Active {
		t.Errorf("deactivated habit = %+v", got)
	}

	active, err := tr.Habits(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 0 {
		t.Errorf("active habits after deactivation: %d", len(active))
	}

	if _, err := tr.Deactivate("missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown ref: got %v, want ErrNotFound", err)
	}
}

// Five weekday logs on an easy habit with a target of 5: day points follow
// the streak curve and the weekly bonus lands exactly on the fifth log.
func TestLogCompletion_WeekOfDailyLogs(t *testing.T) {
	tr, _ := setupTracker(t)
	if _, err := tr.AddHabit("exercise", "", "", "easy", 5); err != nil {
		t.Fatal(err)
	}

	wantPoints := []int{10, 11, 11, 12, 12} // round(10 × (1 + 0.05×(n−1)))
	days := []string{"2025-03-03", "2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07"}

	total := 0
	for i, d := range days {
		res, err := tr.LogCompletion("exercise", day(t, d), "")
		if err != nil {
			t.Fatalf("log %s failed: %v", d, err)
		}
		if res.Streak != i+1 {
			t.Errorf("%s: streak = %d, want %d", d, res.Streak, i+1)
		}
		if res.Completion.Points != wantPoints[i] {
			t.Errorf("%s: points = %d, want %d", d, res.Completion.Points, wantPoints[i])
		}

		set := grantCodes(res.Grants)
		if i == 0 && !set[eligibility.CodeFirstStep] {
			t.Errorf("%s: missing FIRST_STEP", d)
		}
		if i == 2 && !set[eligibility.StreakCode(3)] {
			t.Errorf("%s: missing STREAK_3", d)
		}
		if got, want := set[eligibility.CodeWeeklyConsistency], i == 4; got != want {
			t.Errorf("%s: weekly bonus granted = %v, want %v", d, got, want)
		}
		total += res.PointsAwarded
	}

	// 56 completion points plus the 20-point weekly bonus.
	if total != 76 {
		t.Errorf("total awarded = %d, want 76", total)
	}
}

// A duplicate log for the same habit and day is rejected and changes
// nothing: no completion, no points, no grants.
func TestLogCompletion_DuplicateDayRejected(t *testing.T) {
	tr, store := setupTracker(t)
	if _, err := tr.AddHabit("meditate", "", "", "medium", 3); err != nil {
		t.Fatal(err)
	}

	first, err := tr.LogCompletion("meditate", day(t, "2025-03-03"), "")
	if err != nil {
		t.Fatal(err)
	}

	_, err = tr.LogCompletion("meditate", day(t, "2025-03-03"), "again")
	if !errors.Is(err, apperr.ErrDuplicateCompletion) {
		t.Fatalf("duplicate log: got %v, want ErrDuplicateCompletion", err)
	}

	count, err := store.TotalCompletions()
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("completions after rejected duplicate = %d, want 1", count)
	}
	points, err := store.TotalPoints()
	if err != nil {
		t.Fatal(err)
	}
	if points != first.PointsAwarded {
		t.Errorf("points after rejected duplicate = %d, want %d", points, first.PointsAwarded)
	}
}

// STREAK_7 arrives exactly on the seventh consecutive day, weekend included,
// and a gap afterwards resets the streak to 1.
func TestLogCompletion_StreakSevenAndReset(t *testing.T) {
	tr, _ := setupTracker(t)
	if _, err := tr.AddHabit("journal", "", "", "easy", 7); err != nil {
		t.Fatal(err)
	}

	cursor := day(t, "2025-03-03")
	for i := 1; i <= 7; i++ {
		res, err := tr.LogCompletion("journal", cursor, "")
		if err != nil {
			t.Fatal(err)
		}
		if res.Streak != i {
			t.Errorf("day %d: streak = %d, want %d", i, res.Streak, i)
		}
		if got, want := grantCodes(res.Grants)[eligibility.StreakCode(7)], i == 7; got != want {
			t.Errorf("day %d: STREAK_7 granted = %v, want %v", i, got, want)
		}
		cursor = calendar.NextDay(cursor)
	}

	// Skip a day; the streak restarts.
	cursor = calendar.NextDay(cursor)
	res, err := tr.LogCompletion("journal", cursor, "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Streak != 1 {
		t.Errorf("streak after gap = %d, want 1", res.Streak)
	}
}

// POINTS_100 fires on the log that first brings cumulative points to 100
// or beyond, and never again.
func TestLogCompletion_PointsBadgeOnCrossing(t *testing.T) {
	tr, store := setupTracker(t)
	if _, err := tr.AddHabit("run", "", "", "hard", 7); err != nil {
		t.Fatal(err)
	}

	crossed := false
	cursor := day(t, "2025-03-03")
	for i := 0; i < 10; i++ {
		res, err := tr.LogCompletion("run", cursor, "")
		if err != nil {
			t.Fatal(err)
		}
		total, err := store.TotalPoints()
		if err != nil {
			t.Fatal(err)
		}

		granted := grantCodes(res.Grants)[eligibility.PointsCode(100)]
		if granted && crossed {
			t.Fatalf("POINTS_100 granted twice (log %d)", i+1)
		}
		if granted {
			crossed = true
		}
		if total >= 100 && !crossed {
			t.Fatalf("total %d without POINTS_100 (log %d)", total, i+1)
		}
		cursor = calendar.NextDay(cursor)
	}
	if !crossed {
		t.Fatal("POINTS_100 never granted across 10 hard-habit logs")
	}
}

func TestLogCompletion_BackdatedFillExtendsStreak(t *testing.T) {
	tr, _ := setupTracker(t)
	if _, err := tr.AddHabit("water", "", "", "easy", 7); err != nil {
		t.Fatal(err)
	}

	for _, d := range []string{"2025-03-03", "2025-03-05"} {
		if _, err := tr.LogCompletion("water", day(t, d), ""); err != nil {
			t.Fatal(err)
		}
	}

	// Backfilling the gap day sees the 03-03 completion behind it.
	res, err := tr.LogCompletion("water", day(t, "2025-03-04"), "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Streak != 2 {
		t.Errorf("backdated streak = %d, want 2", res.Streak)
	}
}

func TestLogCompletion_UnknownHabit(t *testing.T) {
	tr, _ := setupTracker(t)
	if _, err := tr.LogCompletion("nope", day(t, "2025-03-03"), ""); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestDayStatus(t *testing.T) {
	tr, _ := setupTracker(t)
	if _, err := tr.AddHabit("read", "", "", "easy", 7); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddHabit("write", "", "", "easy", 7); err != nil {
		t.Fatal(err)
	}
	for _, d := range []string{"2025-03-03", "2025-03-04"} {
		if _, err := tr.LogCompletion("read", day(t, d), ""); err != nil {
			t.Fatal(err)
		}
	}

	statuses, err := tr.DayStatus(day(t, "2025-03-04"))
	if err != nil {
		t.Fatal(err)
	}
	if len(statuses) != 2 {
		t.Fatalf("status count = %d, want 2", len(statuses))
	}
	for _, st := range statuses {
		switch st.Habit.Name {
		case "read":
			if !st.Done || st.Streak != 2 {
				t.Errorf("read: done=%v streak=%d, want done=true streak=2", st.Done, st.Streak)
			}
		case "write":
			if st.Done || st.Streak != 0 {
				t.Errorf("write: done=%v streak=%d, want done=false streak=0", st.Done, st.Streak)
			}
		}
	}
}

func TestAddWeeklyReview(t *testing.T) {
	tr, store := setupTracker(t)

	// A Thursday attaches to its week's Monday.
	review, err := tr.AddWeeklyReview(day(t, "2025-03-06"), "solid week")
	if err != nil {
		t.Fatal(err)
	}
	if review.WeekStart != "2025-03-03" {
		t.Errorf("week start = %s, want 2025-03-03", review.WeekStart)
	}

	reviews, err := store.ListWeeklyReviews()
	if err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 1 || reviews[0].Text != "solid week" {
		t.Errorf("stored reviews = %+v", reviews)
	}
}
