package server

import (
	"testing"

	"github.com/gin-gonic/gin"

	"remberify-backend/internal/ingest"
	"remberify-backend/internal/quiz"
	"remberify-backend/internal/review"
	"remberify-backend/internal/shared/config"
)

func testDeps(env string) RouterDeps {
	return RouterDeps{
		Config:        config.Config{Env: env},
		IngestHandler: ingest.NewHandler(nil),
		QuizHandler:   quiz.NewHandler(nil),
		ReviewHandler: review.NewHandler(nil),
	}
}

func TestNewRouterProductionSetsReleaseMode(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })
	gin.SetMode(gin.TestMode)

	NewRouter(testDeps("production"))
	if gin.Mode() != gin.ReleaseMode {
		t.Fatalf("expected release mode, got %q", gin.Mode())
	}
}

func TestNewRouterDevKeepsMode(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })
	gin.SetMode(gin.TestMode)

	NewRouter(testDeps("dev"))
	if gin.Mode() != gin.TestMode {
		t.Fatalf("expected test mode untouched, got %q", gin.Mode())
	}
}

func TestAddr(t *testing.T) {
	cases := []struct {
		port string
		want string
	}{
		{"", ":8080"},
		{"9000", ":9000"},
		{":7070", ":7070"},
	}
	for _, tc := range cases {
		if got := Addr(tc.port); got != tc.want {
			t.Fatalf("Addr(%q) = %q, want %q", tc.port, got, tc.want)
		}
	}
}
