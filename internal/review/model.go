package review

import "time"

// Schedule tracks when a subject should next review a quiz. One row per
// (quiz, subject) pair; attempts update it in place.
type Schedule struct {
	ID           string    `json:"id"`
	QuizID       string    `json:"quiz_id"`
	SubjectID    string    `json:"user_id"`
	NextReviewAt time.Time `json:"next_review_date"`
	Difficulty   string    `json:"difficulty"`
	ReviewCount  int       `json:"review_count"`
	LastScore    float64   `json:"last_score"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
