package review_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"remberify-backend/internal/bootstrap"
	"remberify-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		ObjectStoreType: "none",
		Env:             "dev",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func TestQuizAttemptEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload, _ := json.Marshal(map[string]any{
		"quiz_id": "quiz-1",
		"user_id": "user-1",
		"correct": 9,
		"total":   10,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/quiz_attempt", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var sched struct {
		ID          string  `json:"id"`
		ReviewCount int     `json:"review_count"`
		LastScore   float64 `json:"last_score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sched); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if sched.ID == "" || sched.ReviewCount != 1 || sched.LastScore != 90 {
		t.Fatalf("unexpected schedule %+v", sched)
	}
}

func TestQuizAttemptEndpointRejectsEmptyQuiz(t *testing.T) {
	router := newTestRouter(t)

	payload, _ := json.Marshal(map[string]any{
		"quiz_id": "quiz-1",
		"user_id": "user-1",
		"correct": 0,
		"total":   0,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/quiz_attempt", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestDueReviewsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/due?user_id=user-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var out []any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no due reviews for fresh store, got %d", len(out))
	}
}

func TestDueReviewsEndpointRequiresUser(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/due", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}
