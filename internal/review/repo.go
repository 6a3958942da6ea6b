package review

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound means no schedule exists for the (quiz, subject) pair.
var ErrNotFound = errors.New("review schedule not found")

// ReviewRepo defines persistence operations for review schedules.
type ReviewRepo interface {
	Get(ctx context.Context, quizID, subjectID string) (Schedule, error)
	Upsert(ctx context.Context, s Schedule) error
	ListDue(ctx context.Context, subjectID string, before time.Time) ([]Schedule, error)
}
