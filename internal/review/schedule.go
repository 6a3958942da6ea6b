package review

import (
	"errors"
	"time"
)

// ErrNoQuestions means an attempt was recorded against a quiz with zero
// questions; no score can be computed.
var ErrNoQuestions = errors.New("quiz has no questions")

// reviewHour pins every next-review time to 09:00 in the caller's location.
const reviewHour = 9

// NextReview computes the next review time and the percentage score for one
// attempt. The interval widens with performance: a week for mastery, a single
// day for anything below 70 percent.
func NextReview(correct, total int, now time.Time) (time.Time, float64, error) {
	if total <= 0 {
		return time.Time{}, 0, ErrNoQuestions
	}
	if correct < 0 {
		correct = 0
	}
	if correct > total {
		correct = total
	}

	score := float64(correct) / float64(total) * 100
	next := now.AddDate(0, 0, intervalDays(score))
	next = time.Date(next.Year(), next.Month(), next.Day(), reviewHour, 0, 0, 0, now.Location())
	return next, score, nil
}

func intervalDays(score float64) int {
	switch {
	case score >= 90:
		return 7
	case score >= 80:
		return 3
	case score >= 70:
		return 2
	default:
		return 1
	}
}
