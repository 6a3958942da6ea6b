package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "quiz_id", "subject_id", "next_review_at", "difficulty", "review_count", "last_score", "created_at", "updated_at",
	}).AddRow("sched-1", "quiz-1", "user-1", now.AddDate(0, 0, 3), "medium", 2, 85.0, now, now)

	mock.ExpectQuery("SELECT id, quiz_id, subject_id").
		WithArgs("quiz-1", "user-1").
		WillReturnRows(rows)

	sched, err := repo.Get(context.Background(), "quiz-1", "user-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sched.ID != "sched-1" || sched.ReviewCount != 2 || sched.LastScore != 85 {
		t.Fatalf("unexpected schedule %+v", sched)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT id, quiz_id, subject_id").
		WithArgs("quiz-1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.Get(context.Background(), "quiz-1", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	sched := Schedule{
		ID:           "sched-1",
		QuizID:       "quiz-1",
		SubjectID:    "user-1",
		NextReviewAt: now.AddDate(0, 0, 7),
		Difficulty:   "easy",
		ReviewCount:  3,
		LastScore:    92.5,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO review_schedules").
		WithArgs(
			sched.ID,
			sched.QuizID,
			sched.SubjectID,
			sched.NextReviewAt,
			sched.Difficulty,
			sched.ReviewCount,
			sched.LastScore,
			sched.CreatedAt,
			sched.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), sched); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListDue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "quiz_id", "subject_id", "next_review_at", "difficulty", "review_count", "last_score", "created_at", "updated_at",
	}).
		AddRow("sched-1", "quiz-1", "user-1", now.Add(-48*time.Hour), "medium", 1, 70.0, now, now).
		AddRow("sched-2", "quiz-2", "user-1", now.Add(-1*time.Hour), "hard", 4, 95.0, now, now)

	mock.ExpectQuery("SELECT id, quiz_id, subject_id").
		WithArgs("user-1", sqlmock.AnyArg()).
		WillReturnRows(rows)

	due, err := repo.ListDue(context.Background(), "user-1", now)
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected 2 schedules, got %d", len(due))
	}
	if due[0].ID != "sched-1" || due[1].ID != "sched-2" {
		t.Fatalf("unexpected order: %q, %q", due[0].ID, due[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
