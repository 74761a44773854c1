package sqlite

import (
	"fmt"
	"time"

	"habitual/internal/models"
)

func (s *Store) InsertWeeklyReview(r models.WeeklyReview) error {
	_, err := s.q.Exec(`
		INSERT INTO weekly_reviews (id, week_start, text, created_at)
		VALUES (?, ?, ?, ?)`,
		r.ID, r.WeekStart, r.Text, r.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) ListWeeklyReviews() ([]models.WeeklyReview, error) {
	rows, err := s.q.Query(`
		SELECT id, week_start, text, created_at
		FROM weekly_reviews
		ORDER BY week_start, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.WeeklyReview
	for rows.Next() {
		var r models.WeeklyReview
		var createdAt string
		if err := rows.Scan(&r.ID, &r.WeekStart, &r.Text, &createdAt); err != nil {
			return nil, err
		}
		r.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for review %s: %w", r.ID, err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}
