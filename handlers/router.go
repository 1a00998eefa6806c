package handlers

import (
	"net/http"

	"ausverity-backend/metrics"
	"ausverity-backend/render"
	"ausverity-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds everything the router serves
type RouterConfig struct {
	PageService    *service.PageService
	ContentService *service.ContentService
	LawyerService  *service.LawyerService
	Renderer       *render.Renderer
	Metrics        *metrics.Metrics
	Logger         *zap.Logger

	// Admin routes are only registered when set
	AdminTokenHash string
}

// NewRouter builds the gin engine with every route registered
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	if cfg.Metrics != nil {
		r.Use(RequestMetrics(cfg.Metrics))
	}
	r.SetHTMLTemplate(cfg.Renderer.Template())

	pageHandler := NewPageHandler(cfg.PageService, cfg.Metrics, logger)
	lawyerHandler := NewLawyerHandler(cfg.LawyerService, logger)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// API routes
	api := r.Group("/api")
	{
		api.GET("/states", pageHandler.ListStates)
		api.GET("/practice-areas", pageHandler.ListPracticeAreas)
		api.GET("/static-params", pageHandler.StaticParams)
		api.GET("/pages/:state/:practiceArea", pageHandler.GetPage)

		api.GET("/lawyers", lawyerHandler.SearchLawyers)

		if cfg.AdminTokenHash != "" && cfg.ContentService != nil {
			adminHandler := NewAdminHandler(cfg.ContentService, cfg.AdminTokenHash, logger)
			admin := api.Group("/admin", adminHandler.RequireToken())
			admin.POST("/content/reload", adminHandler.ReloadContent)
			admin.GET("/content/coverage", adminHandler.GetCoverage)
		}
	}

	// Pages
	r.GET("/", pageHandler.Home)
	r.GET("/:state", pageHandler.State)
	r.GET("/:state/:practiceArea", pageHandler.PracticeArea)
	r.NoRoute(pageHandler.NotFound)

	return r
}
