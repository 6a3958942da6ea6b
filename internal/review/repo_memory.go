package review

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of ReviewRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Schedule // quizID|subjectID -> schedule
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Schedule),
	}
}

func scheduleKey(quizID, subjectID string) string {
	return quizID + "|" + subjectID
}

// Get returns the schedule for a (quiz, subject) pair.
func (r *MemoryRepo) Get(ctx context.Context, quizID, subjectID string) (Schedule, error) {
	if err := ctx.Err(); err != nil {
		return Schedule{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.data[scheduleKey(quizID, subjectID)]
	if !ok {
		return Schedule{}, ErrNotFound
	}
	return s, nil
}

// Upsert stores or replaces the schedule for its (quiz, subject) pair.
func (r *MemoryRepo) Upsert(ctx context.Context, s Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[scheduleKey(s.QuizID, s.SubjectID)] = s
	return nil
}

// ListDue returns a subject's schedules due at or before the given time,
// soonest first.
func (r *MemoryRepo) ListDue(ctx context.Context, subjectID string, before time.Time) ([]Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Schedule{}
	for _, s := range r.data {
		if s.SubjectID != subjectID {
			continue
		}
		if s.NextReviewAt.After(before) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NextReviewAt.Before(out[j].NextReviewAt)
	})
	return out, nil
}

var _ ReviewRepo = (*MemoryRepo)(nil)
