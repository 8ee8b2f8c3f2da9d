package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ArticleDigest/internal/config"
	"ArticleDigest/internal/handler"
	"ArticleDigest/internal/infrastructure/extractor"
	"ArticleDigest/internal/infrastructure/llm"
	"ArticleDigest/internal/infrastructure/storage"
	"ArticleDigest/internal/logging"
	"ArticleDigest/internal/ports"
	"ArticleDigest/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

// Application wires configuration into the pipeline and the HTTP server.
// Store connections and the generation client are constructed once here and
// injected down the stack; nothing is shared through package globals.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	router *gin.Engine
	db     *sql.DB
	mongo  *mongo.Client
}

// New constructs every dependency and assembles the request-handling stack.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Archive.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	cache := storage.NewPostgresCache(db)
	if err := cache.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	archive := storage.NewMongoArchive(mongoClient.Database(cfg.Archive.Database))

	generator, err := llm.NewGeminiClient(ctx, cfg.Gemini)
	if err != nil {
		return nil, err
	}

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Extractor: newExtractor(cfg.Extractor),
		Generator: generator,
		Cache:     cache,
		Archive:   archive,
		Logger:    baseLogger.With("component", "pipeline"),
	})

	h := handler.NewSummarizeHandler(pipeline, baseLogger.With("component", "handler"))

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.Server)))
	router.POST("/api/summarize", h.Summarize)
	router.GET("/health", h.Health)

	return &Application{
		cfg:    cfg,
		logger: baseLogger.With("component", "app"),
		router: router,
		db:     db,
		mongo:  mongoClient,
	}, nil
}

func newExtractor(cfg config.ExtractorConfig) ports.Extractor {
	if cfg.Strategy == "readability" {
		return extractor.NewReadabilityExtractor(nil)
	}
	return extractor.NewStructuralExtractor(nil)
}

func corsConfig(cfg config.ServerConfig) cors.Config {
	origins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}

	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully and
// releases store connections.
func (a *Application) Run(ctx context.Context) error {
	srv := &http.Server{Addr: a.cfg.Server.Addr, Handler: a.router}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	a.logger.Info("listening", "addr", a.cfg.Server.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return a.Close(shutdownCtx)
}

// Close releases the Postgres and Mongo connections.
func (a *Application) Close(ctx context.Context) error {
	var firstErr error
	if err := a.db.Close(); err != nil {
		firstErr = fmt.Errorf("close postgres: %w", err)
	}
	if err := a.mongo.Disconnect(ctx); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("disconnect mongo: %w", err)
	}
	return firstErr
}
