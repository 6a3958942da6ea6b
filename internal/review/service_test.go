package review

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
}

func newTestService() *Service {
	svc := NewService(NewMemoryRepo())
	svc.Now = fixedNow
	return svc
}

func TestRecordAttemptCreatesSchedule(t *testing.T) {
	svc := newTestService()

	sched, err := svc.RecordAttempt(context.Background(), "quiz-1", "user-1", "hard", 9, 10)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if sched.ID == "" {
		t.Fatalf("expected schedule ID assigned")
	}
	if sched.ReviewCount != 1 {
		t.Fatalf("expected review count 1, got %d", sched.ReviewCount)
	}
	if sched.LastScore != 90 {
		t.Fatalf("expected last score 90, got %v", sched.LastScore)
	}
	if sched.Difficulty != "hard" {
		t.Fatalf("expected difficulty kept, got %q", sched.Difficulty)
	}

	wantDay := fixedNow().AddDate(0, 0, 7)
	if sched.NextReviewAt.Day() != wantDay.Day() || sched.NextReviewAt.Hour() != 9 {
		t.Fatalf("unexpected next review %v", sched.NextReviewAt)
	}
}

func TestRecordAttemptUpdatesExisting(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.RecordAttempt(ctx, "quiz-1", "user-1", "", 5, 10)
	if err != nil {
		t.Fatalf("first RecordAttempt: %v", err)
	}

	second, err := svc.RecordAttempt(ctx, "quiz-1", "user-1", "", 10, 10)
	if err != nil {
		t.Fatalf("second RecordAttempt: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("expected same schedule row, got %q and %q", first.ID, second.ID)
	}
	if second.ReviewCount != 2 {
		t.Fatalf("expected review count 2, got %d", second.ReviewCount)
	}
	if second.LastScore != 100 {
		t.Fatalf("expected last score replaced, got %v", second.LastScore)
	}
	if !second.NextReviewAt.After(first.NextReviewAt) {
		t.Fatalf("expected next review pushed out: %v -> %v", first.NextReviewAt, second.NextReviewAt)
	}
}

func TestRecordAttemptDefaultsDifficulty(t *testing.T) {
	svc := newTestService()

	sched, err := svc.RecordAttempt(context.Background(), "quiz-1", "user-1", "", 5, 10)
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if sched.Difficulty != "medium" {
		t.Fatalf("expected default difficulty, got %q", sched.Difficulty)
	}
}

func TestRecordAttemptNoQuestions(t *testing.T) {
	svc := newTestService()

	if _, err := svc.RecordAttempt(context.Background(), "quiz-1", "user-1", "", 0, 0); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestDueFiltersBySubjectAndTime(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	svc.Now = fixedNow
	ctx := context.Background()

	seed := []Schedule{
		{ID: "a", QuizID: "q1", SubjectID: "user-1", NextReviewAt: fixedNow().Add(-24 * time.Hour)},
		{ID: "b", QuizID: "q2", SubjectID: "user-1", NextReviewAt: fixedNow().Add(-1 * time.Hour)},
		{ID: "c", QuizID: "q3", SubjectID: "user-1", NextReviewAt: fixedNow().Add(48 * time.Hour)},
		{ID: "d", QuizID: "q4", SubjectID: "user-2", NextReviewAt: fixedNow().Add(-1 * time.Hour)},
	}
	for _, s := range seed {
		if err := repo.Upsert(ctx, s); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}

	due, err := svc.Due(ctx, "user-1")
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 due schedules, got %d", len(due))
	}
	if due[0].ID != "a" || due[1].ID != "b" {
		t.Fatalf("expected soonest-first ordering, got %q then %q", due[0].ID, due[1].ID)
	}
}
