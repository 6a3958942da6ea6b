package quiz

import "strings"

// minSentenceLen filters out fragments too short to carry a question.
const minSentenceLen = 20

// fallbackOptions are the fixed choices for templated questions. The first
// entry is always correct.
var fallbackOptions = []string{
	"It is described in detail",
	"It is mentioned briefly",
	"It is the main focus",
	"It is not mentioned",
}

const fallbackExplanation = "This question was generated from the content structure."

const fallbackSocraticResponse = "That's an interesting approach. " +
	"Can you tell me what led you to that conclusion? " +
	"What other aspects of this concept should we consider?"

// FallbackQuestions builds templated questions straight from the source text
// when the model path is unavailable. Deterministic for a given input.
func FallbackQuestions(content string, count int) []Question {
	if count <= 0 {
		return []Question{}
	}

	out := make([]Question, 0, count)
	for _, s := range splitSentences(content) {
		if len(out) == count {
			break
		}
		s = strings.TrimSpace(s)
		if len(s) <= minSentenceLen {
			continue
		}
		out = append(out, Question{
			Prompt:        "What is mentioned about: " + truncateRunes(s, 100) + "...?",
			Options:       append([]string(nil), fallbackOptions...),
			CorrectAnswer: 0,
			Explanation:   fallbackExplanation,
			Type:          TypeMultipleChoice,
		})
	}
	return out
}

// FallbackSummary returns the first three sentences of the source text.
func FallbackSummary(content string) string {
	sentences := splitSentences(content)
	kept := make([]string, 0, 3)
	for _, s := range sentences {
		if len(kept) == 3 {
			break
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}

// FallbackSocratic returns the fixed encouragement response.
func FallbackSocratic() string {
	return fallbackSocraticResponse
}

func splitSentences(content string) []string {
	return strings.Split(content, ".")
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
