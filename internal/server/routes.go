package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"remberify-backend/internal/shared/metrics"
)

func registerRoutes(r *gin.Engine, deps RouterDeps) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "remberify-backend", "status": "running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	deps.IngestHandler.RegisterRoutes(api)
	deps.QuizHandler.RegisterRoutes(api)
	deps.ReviewHandler.RegisterRoutes(api)
}
