package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"remberify-backend/internal/ingest"
	"remberify-backend/internal/quiz"
	"remberify-backend/internal/review"
	"remberify-backend/internal/services/health"
	"remberify-backend/internal/shared/config"
	"remberify-backend/internal/shared/server/middleware"
)

// RouterDeps carries everything the router needs wired in.
type RouterDeps struct {
	Config        config.Config
	IngestHandler *ingest.Handler
	QuizHandler   *quiz.Handler
	ReviewHandler *review.Handler
	Health        *health.Service
}

// NewRouter builds the gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	registerRoutes(engine, deps)
	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
