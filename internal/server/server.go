// Package server assembles the HTTP application: configuration, storage,
// the evaluation pipeline, and routes.
package server

import (
	"context"
	"database/sql"

	"github.com/gin-gonic/gin"

	"resume-evaluator/internal/extract"
	"resume-evaluator/internal/extract/ocr"
	"resume-evaluator/internal/extract/ocr/mupdf"
	"resume-evaluator/internal/extract/ocr/tesseract"
	"resume-evaluator/internal/jobs"
	"resume-evaluator/internal/scoring"
	"resume-evaluator/internal/scoring/grok"
	"resume-evaluator/internal/shared/config"
	"resume-evaluator/internal/shared/server/middleware"
	"resume-evaluator/internal/shared/server/respond"
	"resume-evaluator/internal/shared/storage/db"
	"resume-evaluator/internal/shared/storage/object/local"
	"resume-evaluator/internal/shared/telemetry"
	"resume-evaluator/internal/submissions"
)

// App holds the assembled router and the resources it owns.
type App struct {
	Router *gin.Engine

	database *sql.DB
}

// New builds the application from config. A missing or unreachable database
// degrades to in-memory repositories; missing OCR or AI configuration
// degrades those pipeline stages.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	app := &App{}

	jobsRepo, subsRepo := app.buildRepos(ctx, cfg)

	var (
		engine   ocr.Engine
		renderer ocr.PageRenderer
	)
	if cfg.OCREnabled {
		engine = tesseract.New(cfg.OCRLanguage)
		renderer = mupdf.New()
	} else {
		telemetry.Warn("ocr.disabled", map[string]any{"reason": "OCR_ENABLED is false"})
	}

	var ai scoring.AIScorer
	if cfg.GrokConfigured() {
		if client := grok.NewClient(cfg.GrokAPIKey, cfg.GrokAPIURL); client != nil {
			ai = client
		}
	} else {
		telemetry.Warn("grok.disabled", map[string]any{"reason": "api key or url not configured"})
	}

	jobsSvc := &jobs.Service{Repo: jobsRepo}
	subsSvc := &submissions.Service{
		Repo:      subsRepo,
		Jobs:      jobsRepo,
		Store:     local.New(cfg.LocalStoreDir),
		Extractor: extract.New(engine, renderer),
		Scorer:    scoring.NewHybrid(ai),
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	router.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	jobs.NewHandler(jobsSvc).RegisterRoutes(api)
	submissions.NewHandler(subsSvc).RegisterRoutes(api)

	app.Router = router
	return app, nil
}

// Close releases resources owned by the app.
func (a *App) Close() {
	if a.database != nil {
		_ = a.database.Close()
	}
}

// buildRepos connects to Postgres when configured, falling back to memory
// repositories when the database is absent or unreachable.
func (a *App) buildRepos(ctx context.Context, cfg config.Config) (jobs.Repo, submissions.Repo) {
	if cfg.DatabaseURL == "" {
		telemetry.Warn("db.disabled", map[string]any{"reason": "DATABASE_URL not set, using in-memory storage"})
		return jobs.NewMemoryRepo(), submissions.NewMemoryRepo()
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Error("db.connect_failed", map[string]any{"error": err.Error()})
		return jobs.NewMemoryRepo(), submissions.NewMemoryRepo()
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		telemetry.Error("db.migrate_failed", map[string]any{"error": err.Error()})
		_ = database.Close()
		return jobs.NewMemoryRepo(), submissions.NewMemoryRepo()
	}

	a.database = database
	telemetry.Info("db.connected", nil)
	return &jobs.PGRepo{DB: database}, &submissions.PGRepo{DB: database}
}
