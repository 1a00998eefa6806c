package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ausverity-backend/bootstrap"
	"ausverity-backend/config"
	"ausverity-backend/content"
	"ausverity-backend/handlers"
	"ausverity-backend/logging"
	"ausverity-backend/metrics"
	"ausverity-backend/render"
	"ausverity-backend/repository"
	"ausverity-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load .env file from the working directory or the project root
	if !config.LoadDotEnv() {
		log.Printf("Warning: No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres is optional; without it lawyer search answers 503
	var db *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		db, err = bootstrap.InitPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to initialize postgres", zap.Error(err))
		}
		defer db.Close()
		logger.Info("postgres connection established")
	} else {
		logger.Warn("DATABASE_URL not set, lawyer search disabled")
	}

	m := metrics.New()

	// Content
	source, err := bootstrap.ContentSource(cfg, db)
	if err != nil {
		logger.Fatal("failed to initialize content source", zap.Error(err))
	}
	contentService := service.NewContentService(
		service.ContentWithSource(source),
		service.ContentWithLogger(logger),
		service.ContentWithMetrics(m),
	)
	if _, err := contentService.Reload(ctx); err != nil {
		logger.Fatal("failed to load content", zap.Error(err))
	}

	// Services
	pageService := service.NewPageService(
		service.WithContentResolver(contentService.Resolver()),
		service.WithBaseURL(cfg.BaseURL),
		service.WithSiteName(cfg.SiteName),
	)

	var lawyerOpts []service.LawyerServiceOption
	if db != nil {
		lawyerOpts = append(lawyerOpts, service.WithLawyerSearcher(repository.NewLawyerRepository(db)))
	}
	lawyerService := service.NewLawyerService(lawyerOpts...)

	renderer, err := render.New()
	if err != nil {
		logger.Fatal("failed to load templates", zap.Error(err))
	}

	if cfg.AdminTokenHash == "" {
		logger.Info("ADMIN_TOKEN_HASH not set, admin routes disabled")
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		PageService:    pageService,
		ContentService: contentService,
		LawyerService:  lawyerService,
		Renderer:       renderer,
		Metrics:        m,
		Logger:         logger,
		AdminTokenHash: cfg.AdminTokenHash,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.ContentWatch {
		g.Go(func() error {
			logger.Info("watching content directory", zap.String("dir", cfg.ContentDir))
			err := content.Watch(gctx, cfg.ContentDir, logger, func() {
				// failures are logged by the service and the previous table stays live
				_, _ = contentService.Reload(gctx)
			})
			if err != nil {
				logger.Error("content watcher stopped", zap.Error(err))
			}
			return nil
		})
	}

	g.Go(func() error {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("content_source", source.Name()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
