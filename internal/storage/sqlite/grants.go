package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"habitual/internal/models"
)

// InsertGrant writes a grant unless one already exists for its (code, scope,
// period) key. A uniqueness conflict means the milestone was granted by an
// earlier evaluation and is absorbed as (false, nil).
func (s *Store) InsertGrant(g models.Grant) (bool, error) {
	habitID := sql.NullString{String: g.HabitID, Valid: g.HabitID != ""}
	periodStart := sql.NullString{String: g.PeriodStart, Valid: g.PeriodStart != ""}
	periodEnd := sql.NullString{String: g.PeriodEnd, Valid: g.PeriodEnd != ""}

	_, err := s.q.Exec(`
		INSERT INTO grants (id, code, habit_id, day, points, reason, period_start, period_end, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Code, habitID, g.Day, g.Points, g.Reason, periodStart, periodEnd,
		g.CreatedAt.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) GrantsInRange(start, end string) ([]models.Grant, error) {
	return s.queryGrants(`
		SELECT id, code, habit_id, day, points, reason, period_start, period_end, created_at
		FROM grants
		WHERE day >= ? AND day <= ?
		ORDER BY day, created_at`, start, end)
}

func (s *Store) ListGrants() ([]models.Grant, error) {
	return s.queryGrants(`
		SELECT id, code, habit_id, day, points, reason, period_start, period_end, created_at
		FROM grants
		ORDER BY day, created_at`)
}

func (s *Store) queryGrants(query string, args ...any) ([]models.Grant, error) {
	rows, err := s.q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []models.Grant
	for rows.Next() {
		var g models.Grant
		var habitID, periodStart, periodEnd sql.NullString
		var createdAt string

		err := rows.Scan(&g.ID, &g.Code, &habitID, &g.Day, &g.Points, &g.Reason, &periodStart, &periodEnd, &createdAt)
		if err != nil {
			return nil, err
		}

		g.HabitID = habitID.String
		g.PeriodStart = periodStart.String
		g.PeriodEnd = periodEnd.String
		g.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for grant %s: %w", g.ID, err)
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}
