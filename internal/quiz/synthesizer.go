package quiz

import (
	"context"
	"strings"
	"time"

	"remberify-backend/internal/llm"
	"remberify-backend/internal/shared/metrics"
	"remberify-backend/internal/shared/telemetry"
)

// Synthesizer produces quizzes, summaries, and Socratic turns. Every model
// failure degrades to a deterministic fallback; synthesis itself never fails.
type Synthesizer struct {
	gateway *llm.Gateway
	timeout time.Duration
}

// NewSynthesizer wires a synthesizer to the model gateway. A nil gateway is
// allowed and forces the fallback path for every call.
func NewSynthesizer(gateway *llm.Gateway, timeout time.Duration) *Synthesizer {
	return &Synthesizer{gateway: gateway, timeout: timeout}
}

// GenerateQuiz builds a quiz of up to count questions from the content.
// Requesting zero or fewer questions yields an empty quiz.
func (s *Synthesizer) GenerateQuiz(ctx context.Context, content string, difficulty Difficulty, count int) Artifact {
	if count <= 0 {
		return Artifact{
			Questions:     []Question{},
			Summary:       summarizeContent(content),
			EstimatedTime: 0,
		}
	}

	if s.gateway != nil {
		raw, err := s.gateway.InvokeText(ctx, buildQuizPrompt(content, difficulty, count), llm.Options{
			MaxTokens:   2000,
			Temperature: 0.7,
			TopP:        0.9,
			Timeout:     s.timeout,
		})
		if err == nil {
			questions, perr := parseQuestions(raw)
			if perr == nil {
				return Artifact{
					Questions:     questions,
					Summary:       summarizeContent(content),
					EstimatedTime: EstimateMinutes(len(questions)),
				}
			}
			telemetry.Error("quiz generation: unusable model output", map[string]any{
				"error":   perr.Error(),
				"preview": telemetry.Preview(raw),
			})
		} else {
			telemetry.Error("quiz generation: model call failed", map[string]any{"error": err.Error()})
		}
	}

	metrics.IncFallback()
	questions := FallbackQuestions(content, count)
	telemetry.Info("quiz generation: using fallback questions", map[string]any{
		"requested": count,
		"generated": len(questions),
	})
	return Artifact{
		Questions:     questions,
		Summary:       summarizeContent(content),
		EstimatedTime: EstimateMinutes(len(questions)),
		Fallback:      true,
	}
}

// GenerateSummary produces a bullet-point summary of the content, degrading
// to the leading sentences when the model is unavailable.
func (s *Synthesizer) GenerateSummary(ctx context.Context, content string) (string, bool) {
	if s.gateway != nil {
		raw, err := s.gateway.InvokeText(ctx, buildSummaryPrompt(content), llm.Options{
			MaxTokens:   500,
			Temperature: 0.3,
			TopP:        0.9,
			Timeout:     s.timeout,
		})
		if err == nil {
			if summary := strings.TrimSpace(raw); summary != "" {
				return summary, false
			}
		} else {
			telemetry.Error("summary generation: model call failed", map[string]any{"error": err.Error()})
		}
	}

	metrics.IncFallback()
	telemetry.Info("summary generation: using fallback summary", nil)
	return FallbackSummary(content), true
}

// SocraticTurn produces one tutoring response for a student's answer. The
// guidance strategy shifts with the attempt number: probing questions first,
// hints second, direct explanation from the third attempt on.
func (s *Synthesizer) SocraticTurn(ctx context.Context, question, userAnswer string, attempt int) SocraticTurn {
	if attempt < 1 {
		attempt = 1
	}

	if s.gateway != nil {
		raw, err := s.gateway.InvokeText(ctx, buildSocraticPrompt(question, userAnswer, attempt), llm.Options{
			MaxTokens:   300,
			Temperature: 0.8,
			TopP:        0.9,
			Timeout:     s.timeout,
		})
		if err == nil {
			if resp := strings.TrimSpace(raw); resp != "" {
				return SocraticTurn{Response: resp, Attempt: attempt, NextAttempt: attempt + 1}
			}
		} else {
			telemetry.Error("socratic turn: model call failed", map[string]any{
				"error":   err.Error(),
				"attempt": attempt,
			})
		}
	}

	metrics.IncFallback()
	return SocraticTurn{
		Response:    FallbackSocratic(),
		Attempt:     attempt,
		NextAttempt: attempt + 1,
		Fallback:    true,
	}
}

// summarizeContent is the short inline summary attached to a quiz artifact.
func summarizeContent(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= 200 {
		return content
	}
	return truncateRunes(content, 200) + "..."
}
