package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"remberify-backend/internal/extract"
	"remberify-backend/internal/ingest"
	"remberify-backend/internal/llm"
	openaiprovider "remberify-backend/internal/llm/openai"
	"remberify-backend/internal/quiz"
	"remberify-backend/internal/review"
	"remberify-backend/internal/server"
	"remberify-backend/internal/services/health"
	"remberify-backend/internal/shared/config"
	"remberify-backend/internal/shared/storage/db"
	"remberify-backend/internal/shared/storage/object"
	localstore "remberify-backend/internal/shared/storage/object/local"
	s3store "remberify-backend/internal/shared/storage/object/s3"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	Gateway     *llm.Gateway
	Extractor   *extract.Extractor
	Synthesizer *quiz.Synthesizer

	ReviewRepo    review.ReviewRepo
	IngestService *ingest.Service
	ReviewService *review.Service

	IngestHandler *ingest.Handler
	QuizHandler   *quiz.Handler
	ReviewHandler *review.Handler
	Health        *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gateway, err := buildGateway(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		DB:      sqlDB,
		Store:   store,
		Gateway: gateway,
	}
	buildServices(app, cfg.ModelTimeout)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		IngestHandler: app.IngestHandler,
		QuizHandler:   app.QuizHandler,
		ReviewHandler: app.ReviewHandler,
		Health:        app.Health,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.AWSRegion) == "" || strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires AWS_REGION and S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.S3PublicBaseURL)
	case "none":
		return nil, nil
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.LocalStoreURL), nil
	}
}

// buildGateway wires the model gateway. Without an API key every synthesis
// path runs on deterministic fallbacks and image OCR is unavailable.
func buildGateway(cfg config.Config) (*llm.Gateway, error) {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: OPENAI_API_KEY empty; model gateway disabled, deterministic fallbacks only")
			return nil, nil
		}
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	text, err := openaiprovider.NewClient(cfg.OpenAIAPIKey, cfg.TextModel, cfg.ModelStreaming)
	if err != nil {
		return nil, err
	}
	vision, err := openaiprovider.NewClient(cfg.OpenAIAPIKey, cfg.VisionModel, false)
	if err != nil {
		return nil, err
	}
	return llm.NewGateway(text, vision), nil
}

func buildServices(app *App, modelTimeout time.Duration) {
	if app.DB != nil {
		app.ReviewRepo = &review.PGRepo{DB: app.DB}
	} else {
		app.ReviewRepo = review.NewMemoryRepo()
	}

	app.Extractor = &extract.Extractor{
		Gateway:       app.Gateway,
		VisionTimeout: modelTimeout,
	}
	app.Synthesizer = quiz.NewSynthesizer(app.Gateway, modelTimeout)

	app.IngestService = ingest.NewService(app.Extractor, app.Synthesizer, app.Store)
	app.ReviewService = review.NewService(app.ReviewRepo)

	app.IngestHandler = ingest.NewHandler(app.IngestService)
	app.QuizHandler = quiz.NewHandler(app.Synthesizer)
	app.ReviewHandler = review.NewHandler(app.ReviewService)
	app.Health = health.NewService(app.DB)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
