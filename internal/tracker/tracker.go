// Package tracker is the write path: habit registration, completion logging
// with scoring and streak snapshots, and day-status reads. Logging a
// completion and granting its consequential bonuses happen inside one store
// transaction, so a duplicate-day rejection leaves no partial state behind.
package tracker

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"habitual/internal/apperr"
	"habitual/internal/calendar"
	"habitual/internal/eligibility"
	"habitual/internal/models"
	"habitual/internal/scoring"
	"habitual/internal/storage"
	"habitual/internal/streak"
)

type Tracker struct {
	store   storage.Provider
	scoring scoring.Config
	engine  *eligibility.Engine
}

func New(store storage.Provider, scoringCfg scoring.Config, engine *eligibility.Engine) *Tracker {
	return &Tracker{store: store, scoring: scoringCfg, engine: engine}
}

// LogResult is what a single successful completion produced.
type LogResult struct {
	Habit      models.Habit
	Completion models.Completion
	// Grants holds only grants newly awarded by this log
	Grants []models.Grant
	// PointsAwarded is the completion's points plus new grant points
	PointsAwarded int
	Streak        int
}

// HabitStatus is one habit's standing on a given day.
type HabitStatus struct {
	Habit models.Habit
	Done  bool
	// Streak counts consecutive completion days ending on the queried day;
	// 0 when nothing was logged that day.
	Streak int
}

// AddHabit validates and registers a new habit. Name collisions surface as
// DuplicateName from the store.
func (t *Tracker) AddHabit(name, description, cue, difficulty string, frequencyPerWeek int) (models.Habit, error) {
	d, err := models.ParseDifficulty(difficulty)
	if err != nil {
		return models.Habit{}, err
	}
	if frequencyPerWeek < 1 || frequencyPerWeek > 7 {
		return models.Habit{}, apperr.InvalidFrequency(frequencyPerWeek)
	}

	h := models.Habit{
		ID:               uuid.New().String(),
		Name:             strings.TrimSpace(name),
		Description:      description,
		Cue:              cue,
		Difficulty:       d,
		FrequencyPerWeek: frequencyPerWeek,
		Active:           true,
		CreatedAt:        time.Now(),
	}
	if err := t.store.InsertHabit(h); err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func (t *Tracker) Habits(includeInactive bool) ([]models.Habit, error) {
	return t.store.ListHabits(includeInactive)
}

// Deactivate resolves ref by id or name and marks the habit inactive.
// History stays queryable.
func (t *Tracker) Deactivate(ref string) (models.Habit, error) {
	h, err := t.store.FindHabit(ref)
	if err != nil {
		return models.Habit{}, err
	}
	if err := t.store.DeactivateHabit(h.ID); err != nil {
		return models.Habit{}, err
	}
	h.Active = false
	return h, nil
}

// LogCompletion records that habit ref was done on day. Backdating is
// permitted. The streak is computed as of day, the completion is scored and
// persisted with its streak snapshot, and eligibility runs against the
// just-written state, all in one transaction. A second completion for the
// same habit and day is rejected with DuplicateCompletion and nothing is
// written.
func (t *Tracker) LogCompletion(ref string, day time.Time, note string) (LogResult, error) {
	var result LogResult

	err := t.store.Transact(func(s storage.Provider) error {
		habit, err := s.FindHabit(ref)
		if err != nil {
			return err
		}

		dayStr := calendar.FormatDay(day)
		days, err := s.CompletionDays(habit.ID, dayStr)
		if err != nil {
			return err
		}
		streakLength := streak.Length(days, day)
		points := t.scoring.Points(habit.Difficulty, streakLength)

		completion := models.Completion{
			ID:        uuid.New().String(),
			HabitID:   habit.ID,
			Day:       dayStr,
			Points:    points,
			Streak:    streakLength,
			Note:      note,
			CreatedAt: time.Now(),
		}
		if err := s.InsertCompletion(completion); err != nil {
			return err
		}

		grants, err := t.engine.Evaluate(s, habit, day, streakLength)
		if err != nil {
			return err
		}

		awarded := points
		for _, g := range grants {
			awarded += g.Points
		}
		result = LogResult{
			Habit:         habit,
			Completion:    completion,
			Grants:        grants,
			PointsAwarded: awarded,
			Streak:        streakLength,
		}
		return nil
	})
	if err != nil {
		return LogResult{}, err
	}
	return result, nil
}

// DayStatus reports each active habit's done/not-done state and observed
// streak for day.
func (t *Tracker) DayStatus(day time.Time) ([]HabitStatus, error) {
	habits, err := t.store.ListHabits(false)
	if err != nil {
		return nil, err
	}

	dayStr := calendar.FormatDay(day)
	statuses := make([]HabitStatus, 0, len(habits))
	for _, h := range habits {
		days, err := t.store.CompletionDays(h.ID, dayStr)
		if err != nil {
			return nil, err
		}
		done := false
		for _, d := range days {
			if d == dayStr {
				done = true
				break
			}
		}
		statuses = append(statuses, HabitStatus{
			Habit:  h,
			Done:   done,
			Streak: streak.Observed(days, day),
		})
	}
	return statuses, nil
}

// Badges returns every grant awarded so far, in award order.
func (t *Tracker) Badges() ([]models.Grant, error) {
	return t.store.ListGrants()
}

// AddWeeklyReview stores a free-text review attached to the ISO week
// containing day.
func (t *Tracker) AddWeeklyReview(day time.Time, text string) (models.WeeklyReview, error) {
	monday, _ := calendar.WeekBounds(day)
	review := models.WeeklyReview{
		ID:        uuid.New().String(),
		WeekStart: calendar.FormatDay(monday),
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := t.store.InsertWeeklyReview(review); err != nil {
		return models.WeeklyReview{}, err
	}
	return review, nil
}
