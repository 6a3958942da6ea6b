package quiz

import "strings"

// Difficulty is the requested quiz difficulty. It is echoed into the prompt
// and the schedule; nothing adaptive hangs off it.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes a raw difficulty string, defaulting to medium.
func ParseDifficulty(raw string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(raw))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyHard:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// QuestionType distinguishes multiple-choice from short-answer questions.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeShortAnswer    QuestionType = "short-answer"
)

// Question is a single quiz question. For multiple-choice questions
// CorrectAnswer indexes into Options; short-answer questions carry the
// expected answer in AnswerText and have no options.
type Question struct {
	Prompt        string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer int          `json:"correct_answer"`
	AnswerText    string       `json:"answer_text,omitempty"`
	Explanation   string       `json:"explanation"`
	Type          QuestionType `json:"question_type"`
}

// AnswerValid reports whether the question satisfies the answer invariant.
func (q Question) AnswerValid() bool {
	if q.Type == TypeShortAnswer {
		return strings.TrimSpace(q.AnswerText) != ""
	}
	return q.CorrectAnswer >= 0 && q.CorrectAnswer < len(q.Options)
}

// Artifact is one generated quiz. Fallback marks deterministic generation;
// the serialized schema is identical on both paths.
type Artifact struct {
	Questions     []Question `json:"questions"`
	Summary       string     `json:"summary,omitempty"`
	EstimatedTime int        `json:"estimated_time"`
	Fallback      bool       `json:"-"`
}

// SocraticTurn is one stateless tutoring exchange. The attempt count is
// caller-supplied and never persisted here.
type SocraticTurn struct {
	Response    string `json:"response"`
	Attempt     int    `json:"attempt"`
	NextAttempt int    `json:"next_attempt"`
	Fallback    bool   `json:"-"`
}

// minutesPerQuestion is the fixed completion-time estimate per question.
const minutesPerQuestion = 2

// EstimateMinutes returns the estimated completion time for a question count.
func EstimateMinutes(questionCount int) int {
	if questionCount <= 0 {
		return 0
	}
	return minutesPerQuestion * questionCount
}
