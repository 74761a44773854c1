package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"habitual/internal/apperr"
	"habitual/internal/models"
)

func (s *Store) InsertHabit(h models.Habit) error {
	_, err := s.q.Exec(`
		INSERT INTO habits (id, name, description, cue, difficulty, frequency_per_week, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Description, h.Cue, string(h.Difficulty), h.FrequencyPerWeek,
		boolToInt(h.Active), h.CreatedAt.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return apperr.DuplicateName(h.Name)
	}
	return err
}

// FindHabit resolves a habit by id or unique name
func (s *Store) FindHabit(ref string) (models.Habit, error) {
	row := s.q.QueryRow(`
		SELECT id, name, description, cue, difficulty, frequency_per_week, is_active, created_at
		FROM habits WHERE id = ? OR name = ?`, ref, ref)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, apperr.NotFound(ref)
	}
	return h, err
}

func (s *Store) ListHabits(includeInactive bool) ([]models.Habit, error) {
	query := `
		SELECT id, name, description, cue, difficulty, frequency_per_week, is_active, created_at
		FROM habits`
	if !includeInactive {
		query += " WHERE is_active = 1"
	}
	query += " ORDER BY created_at, name"

	rows, err := s.q.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// DeactivateHabit soft-disables a habit; its history stays queryable
func (s *Store) DeactivateHabit(id string) error {
	result, err := s.q.Exec(`UPDATE habits SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperr.NotFound(id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var difficulty, createdAt string
	var active int

	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Cue, &difficulty, &h.FrequencyPerWeek, &active, &createdAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Difficulty = models.Difficulty(difficulty)
	h.Active = active != 0
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	return h, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
