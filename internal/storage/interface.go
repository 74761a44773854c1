package storage

import "habitual/internal/models"

// Provider is the contract between the scoring core and the event store.
// All day parameters are YYYY-MM-DD strings; ranges are inclusive on both
// ends. Uniqueness rules (one point-bearing completion per habit per day,
// one grant per code and scope) are enforced by the store's own constraints,
// not by caller-side checks.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string

	// Transact runs fn against a view of the store scoped to one
	// transaction: every write fn performs commits atomically or not at
	// all. Nested calls join the enclosing transaction.
	Transact(fn func(Provider) error) error

	// Habits
	InsertHabit(models.Habit) error
	// FindHabit resolves a habit by id or by its unique name
	FindHabit(ref string) (models.Habit, error)
	ListHabits(includeInactive bool) ([]models.Habit, error)
	DeactivateHabit(id string) error

	// Completions
	InsertCompletion(models.Completion) error
	// CompletionDays returns the distinct completion days for a habit up to
	// and including upTo, newest first. The streak walk consumes this.
	CompletionDays(habitID, upTo string) ([]string, error)
	CompletionsInRange(start, end string) ([]models.Completion, error)
	CountCompletions(habitID string) (int, error)
	CountCompletionsInRange(habitID, start, end string) (int, error)
	// SumPoints totals completion and grant points awarded inside the range
	SumPoints(start, end string) (int, error)
	// TotalPoints is the all-time sum of completion and grant points
	TotalPoints() (int, error)
	TotalCompletions() (int, error)

	// Grants. InsertGrant reports whether the row was actually inserted: a
	// uniqueness conflict is absorbed as (false, nil), never an error.
	InsertGrant(models.Grant) (bool, error)
	GrantsInRange(start, end string) ([]models.Grant, error)
	ListGrants() ([]models.Grant, error)

	// Weekly reviews
	InsertWeeklyReview(models.WeeklyReview) error
	ListWeeklyReviews() ([]models.WeeklyReview, error)
}
