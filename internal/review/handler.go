package review

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"remberify-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches review routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quiz_attempt", h.recordAttempt)
	rg.GET("/reviews/due", h.due)
}

type quizAttemptRequest struct {
	QuizID     string `json:"quiz_id"`
	UserID     string `json:"user_id"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Difficulty string `json:"difficulty"`
}

func (h *Handler) recordAttempt(c *gin.Context) {
	var req quizAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.QuizID = strings.TrimSpace(req.QuizID)
	req.UserID = strings.TrimSpace(req.UserID)
	if req.QuizID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "quiz_id is required", nil)
		return
	}
	if req.UserID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user_id is required", nil)
		return
	}

	sched, err := h.Svc.RecordAttempt(c.Request.Context(), req.QuizID, req.UserID, req.Difficulty, req.Correct, req.Total)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoQuestions):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record attempt", nil)
		}
		return
	}

	respond.OK(c, sched)
}

func (h *Handler) due(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "user_id is required", nil)
		return
	}

	scheds, err := h.Svc.Due(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list due reviews", nil)
		return
	}

	respond.OK(c, scheds)
}
