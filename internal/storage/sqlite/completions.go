package sqlite

import (
	"fmt"
	"time"

	"habitual/internal/apperr"
	"habitual/internal/models"
)

func (s *Store) InsertCompletion(c models.Completion) error {
	_, err := s.q.Exec(`
		INSERT INTO completions (id, habit_id, day, points, streak, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.HabitID, c.Day, c.Points, c.Streak, c.Note, c.CreatedAt.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return apperr.DuplicateCompletion(c.HabitID, c.Day)
	}
	return err
}

// CompletionDays returns the distinct completion days for a habit up to and
// including upTo, newest first
func (s *Store) CompletionDays(habitID, upTo string) ([]string, error) {
	rows, err := s.q.Query(`
		SELECT DISTINCT day FROM completions
		WHERE habit_id = ? AND day <= ?
		ORDER BY day DESC`, habitID, upTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *Store) CompletionsInRange(start, end string) ([]models.Completion, error) {
	rows, err := s.q.Query(`
		SELECT id, habit_id, day, points, streak, note, created_at
		FROM completions
		WHERE day >= ? AND day <= ?
		ORDER BY day, created_at`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		var createdAt string
		if err := rows.Scan(&c.ID, &c.HabitID, &c.Day, &c.Points, &c.Streak, &c.Note, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for completion %s: %w", c.ID, err)
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}

func (s *Store) CountCompletions(habitID string) (int, error) {
	var count int
	err := s.q.QueryRow(`SELECT COUNT(*) FROM completions WHERE habit_id = ?`, habitID).Scan(&count)
	return count, err
}

func (s *Store) CountCompletionsInRange(habitID, start, end string) (int, error) {
	var count int
	err := s.q.QueryRow(`
		SELECT COUNT(*) FROM completions
		WHERE habit_id = ? AND day >= ? AND day <= ?`, habitID, start, end).Scan(&count)
	return count, err
}

// SumPoints totals completion and grant points awarded inside the range
func (s *Store) SumPoints(start, end string) (int, error) {
	var completionPoints, grantPoints int
	err := s.q.QueryRow(`
		SELECT COALESCE(SUM(points), 0) FROM completions
		WHERE day >= ? AND day <= ?`, start, end).Scan(&completionPoints)
	if err != nil {
		return 0, err
	}
	err = s.q.QueryRow(`
		SELECT COALESCE(SUM(points), 0) FROM grants
		WHERE day >= ? AND day <= ?`, start, end).Scan(&grantPoints)
	if err != nil {
		return 0, err
	}
	return completionPoints + grantPoints, nil
}

// TotalPoints is the all-time sum of completion and grant points
func (s *Store) TotalPoints() (int, error) {
	var completionPoints, grantPoints int
	if err := s.q.QueryRow(`SELECT COALESCE(SUM(points), 0) FROM completions`).Scan(&completionPoints); err != nil {
		return 0, err
	}
	if err := s.q.QueryRow(`SELECT COALESCE(SUM(points), 0) FROM grants`).Scan(&grantPoints); err != nil {
		return 0, err
	}
	return completionPoints + grantPoints, nil
}

func (s *Store) TotalCompletions() (int, error) {
	var count int
	err := s.q.QueryRow(`SELECT COUNT(*) FROM completions`).Scan(&count)
	return count, err
}
