package review

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements ReviewRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the schedule for a (quiz, subject) pair.
func (r *PGRepo) Get(ctx context.Context, quizID, subjectID string) (Schedule, error) {
	const query = `
SELECT id, quiz_id, subject_id, next_review_at, difficulty, review_count, last_score, created_at, updated_at
FROM review_schedules
WHERE quiz_id = $1 AND subject_id = $2
LIMIT 1`
	var s Schedule
	err := r.DB.QueryRowContext(ctx, query, quizID, subjectID).Scan(
		&s.ID,
		&s.QuizID,
		&s.SubjectID,
		&s.NextReviewAt,
		&s.Difficulty,
		&s.ReviewCount,
		&s.LastScore,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Schedule{}, ErrNotFound
		}
		return Schedule{}, err
	}
	return s, nil
}

// Upsert inserts a schedule or replaces the existing row for its
// (quiz, subject) pair.
func (r *PGRepo) Upsert(ctx context.Context, s Schedule) error {
	const query = `
INSERT INTO review_schedules (
    id,
    quiz_id,
    subject_id,
    next_review_at,
    difficulty,
    review_count,
    last_score,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (quiz_id, subject_id) DO UPDATE SET
    next_review_at = EXCLUDED.next_review_at,
    difficulty = EXCLUDED.difficulty,
    review_count = EXCLUDED.review_count,
    last_score = EXCLUDED.last_score,
    updated_at = EXCLUDED.updated_at`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		s.ID,
		s.QuizID,
		s.SubjectID,
		s.NextReviewAt,
		s.Difficulty,
		s.ReviewCount,
		s.LastScore,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

// ListDue returns a subject's schedules due at or before the given time,
// soonest first.
func (r *PGRepo) ListDue(ctx context.Context, subjectID string, before time.Time) ([]Schedule, error) {
	const query = `
SELECT id, quiz_id, subject_id, next_review_at, difficulty, review_count, last_score, created_at, updated_at
FROM review_schedules
WHERE subject_id = $1 AND next_review_at <= $2
ORDER BY next_review_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, subjectID, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Schedule{}
	for rows.Next() {
		var s Schedule
		if err := rows.Scan(
			&s.ID,
			&s.QuizID,
			&s.SubjectID,
			&s.NextReviewAt,
			&s.Difficulty,
			&s.ReviewCount,
			&s.LastScore,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

var _ ReviewRepo = (*PGRepo)(nil)
