package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"remberify-backend/internal/shared/telemetry"
)

// Service records quiz attempts and answers due-review queries.
type Service struct {
	Repo ReviewRepo
	Now  func() time.Time
}

// NewService constructs a Service on the given repo.
func NewService(repo ReviewRepo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// RecordAttempt scores one attempt and upserts the schedule for the
// (quiz, subject) pair: the review count grows, the last score and next
// review time are replaced.
func (s *Service) RecordAttempt(ctx context.Context, quizID, subjectID, difficulty string, correct, total int) (Schedule, error) {
	now := s.Now()
	next, score, err := NextReview(correct, total, now)
	if err != nil {
		return Schedule{}, err
	}
	if difficulty == "" {
		difficulty = "medium"
	}

	sched, err := s.Repo.Get(ctx, quizID, subjectID)
	switch {
	case errors.Is(err, ErrNotFound):
		sched = Schedule{
			ID:        uuid.NewString(),
			QuizID:    quizID,
			SubjectID: subjectID,
			CreatedAt: now,
		}
	case err != nil:
		return Schedule{}, err
	}

	sched.NextReviewAt = next
	sched.Difficulty = difficulty
	sched.ReviewCount++
	sched.LastScore = score
	sched.UpdatedAt = now

	if err := s.Repo.Upsert(ctx, sched); err != nil {
		return Schedule{}, err
	}

	telemetry.Info("review schedule updated", map[string]any{
		"quiz_id":      quizID,
		"subject_id":   subjectID,
		"score":        score,
		"review_count": sched.ReviewCount,
		"next_review":  next,
	})
	return sched, nil
}

// Due lists the subject's schedules whose review time has arrived.
func (s *Service) Due(ctx context.Context, subjectID string) ([]Schedule, error) {
	return s.Repo.ListDue(ctx, subjectID, s.Now())
}
