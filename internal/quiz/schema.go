package quiz

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// quizPayload mirrors the JSON contract the model is instructed to return.
// CorrectAnswer is raw because models emit an index, a numeric string, or the
// answer text itself.
type quizPayload struct {
	Questions []questionPayload `json:"questions"`
}

type questionPayload struct {
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correct_answer"`
	Explanation   string          `json:"explanation"`
	QuestionType  string          `json:"question_type"`
}

// ExtractJSON returns the first balanced JSON object in raw. Models wrap the
// payload in prose or code fences often enough that a plain Unmarshal on the
// whole output is useless.
func ExtractJSON(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1], true
				}
			}
		}
	}
	return "", false
}

// parseQuestions decodes model output into validated questions. Entries that
// fail the answer invariant are dropped rather than failing the batch.
func parseQuestions(raw string) ([]Question, error) {
	jsonStr, ok := ExtractJSON(raw)
	if !ok {
		return nil, errors.New("no JSON object in model output")
	}

	var payload quizPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, err
	}
	if len(payload.Questions) == 0 {
		return nil, errors.New("model output has no questions")
	}

	out := make([]Question, 0, len(payload.Questions))
	for _, p := range payload.Questions {
		q, ok := coerceQuestion(p)
		if !ok {
			continue
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil, errors.New("no usable questions in model output")
	}
	return out, nil
}

func coerceQuestion(p questionPayload) (Question, bool) {
	prompt := strings.TrimSpace(p.Question)
	if prompt == "" {
		return Question{}, false
	}

	idx, text, isIndex := coerceAnswer(p.CorrectAnswer)

	if len(p.Options) == 0 || p.QuestionType == string(TypeShortAnswer) {
		if text == "" {
			return Question{}, false
		}
		return Question{
			Prompt:      prompt,
			AnswerText:  text,
			Explanation: strings.TrimSpace(p.Explanation),
			Type:        TypeShortAnswer,
		}, true
	}

	if !isIndex {
		// Answer given as option text; map it back to an index.
		found := false
		for i, opt := range p.Options {
			if strings.EqualFold(strings.TrimSpace(opt), text) {
				idx = i
				found = true
				break
			}
		}
		if !found {
			return Question{}, false
		}
	}
	if idx < 0 || idx >= len(p.Options) {
		return Question{}, false
	}

	return Question{
		Prompt:        prompt,
		Options:       p.Options,
		CorrectAnswer: idx,
		Explanation:   strings.TrimSpace(p.Explanation),
		Type:          TypeMultipleChoice,
	}, true
}

// coerceAnswer reads correct_answer as an index, a numeric string, or literal
// answer text.
func coerceAnswer(raw json.RawMessage) (idx int, text string, isIndex bool) {
	if len(raw) == 0 {
		return 0, "", false
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, "", true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, "", false
	}
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, "", true
	}
	return 0, s, false
}
