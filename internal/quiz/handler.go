package quiz

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"remberify-backend/internal/shared/server/respond"
)

const defaultQuestionCount = 5

// Handler wires HTTP handlers to the synthesizer.
type Handler struct {
	Synth *Synthesizer
}

// NewHandler constructs a Handler.
func NewHandler(synth *Synthesizer) *Handler {
	return &Handler{Synth: synth}
}

// RegisterRoutes attaches synthesis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate_quiz", h.generateQuiz)
	rg.POST("/summary", h.summary)
	rg.POST("/socratic", h.socratic)
}

type generateQuizRequest struct {
	Content      string `json:"content"`
	NumQuestions *int   `json:"num_questions"`
	Difficulty   string `json:"difficulty"`
}

func (h *Handler) generateQuiz(c *gin.Context) {
	var req generateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
		return
	}

	count := defaultQuestionCount
	if req.NumQuestions != nil {
		count = *req.NumQuestions
	}
	if count > 50 {
		count = 50
	}

	artifact := h.Synth.GenerateQuiz(c.Request.Context(), req.Content, ParseDifficulty(req.Difficulty), count)
	respond.OK(c, artifact)
}

type summaryRequest struct {
	Content string `json:"content"`
}

func (h *Handler) summary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "content is required", nil)
		return
	}

	summary, _ := h.Synth.GenerateSummary(c.Request.Context(), req.Content)
	respond.OK(c, gin.H{
		"summary":       summary,
		"actual_length": len(req.Content),
	})
}

type socraticRequest struct {
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
	Attempts   int    `json:"attempts"`
}

func (h *Handler) socratic(c *gin.Context) {
	var req socraticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	req.UserAnswer = strings.TrimSpace(req.UserAnswer)
	if req.Question == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}
	if req.UserAnswer == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user_answer is required", nil)
		return
	}

	turn := h.Synth.SocraticTurn(c.Request.Context(), req.Question, req.UserAnswer, req.Attempts)
	respond.OK(c, turn)
}
