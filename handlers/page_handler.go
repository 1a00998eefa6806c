package handlers

import (
	"errors"
	"net/http"

	"ausverity-backend/directory"
	"ausverity-backend/metrics"
	"ausverity-backend/render"
	"ausverity-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the directory pages as HTML and JSON
type PageHandler struct {
	pageService *service.PageService
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(pageService *service.PageService, m *metrics.Metrics, logger *zap.Logger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageHandler{
		pageService: pageService,
		metrics:     m,
		logger:      logger,
	}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, render.HomeTemplate, h.pageService.Home())
}

// State handles GET /:state
func (h *PageHandler) State(c *gin.Context) {
	result, err := h.pageService.StateOverview(c.Request.Context(), service.StateOverviewRequest{
		State: c.Param("state"),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, render.StateTemplate, result.Page)
}

// PracticeArea handles GET /:state/:practiceArea
func (h *PageHandler) PracticeArea(c *gin.Context) {
	result, err := h.pageService.BuildPage(c.Request.Context(), service.BuildPageRequest{
		State:        c.Param("state"),
		PracticeArea: c.Param("practiceArea"),
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.observePage(result)
	c.HTML(http.StatusOK, render.PracticeAreaTemplate, result.Page)
}

// NotFound renders the not-found page. Used for unmatched routes, which are
// not counted as page misses.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, render.NotFoundTemplate, h.pageService.NotFound())
}

// GetPage handles GET /api/pages/:state/:practiceArea
func (h *PageHandler) GetPage(c *gin.Context) {
	result, err := h.pageService.BuildPage(c.Request.Context(), service.BuildPageRequest{
		State:        c.Param("state"),
		PracticeArea: c.Param("practiceArea"),
	})
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			h.countNotFound(c)
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Unknown state or practice area")
			return
		}
		h.logger.Error("failed to build page", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "PAGE_FAILED", err.Error())
		return
	}

	h.observePage(result)
	respondOK(c, http.StatusOK, result.Page)
}

// ListStates handles GET /api/states
func (h *PageHandler) ListStates(c *gin.Context) {
	respondOK(c, http.StatusOK, directory.States())
}

// ListPracticeAreas handles GET /api/practice-areas
func (h *PageHandler) ListPracticeAreas(c *gin.Context) {
	respondOK(c, http.StatusOK, directory.PracticeAreas())
}

// StaticParams handles GET /api/static-params
func (h *PageHandler) StaticParams(c *gin.Context) {
	respondOK(c, http.StatusOK, h.pageService.StaticParams())
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrPageNotFound) {
		h.countNotFound(c)
		h.NotFound(c)
		return
	}
	h.logger.Error("failed to build page", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

// countNotFound records a page miss. Stray paths that only land on the page
// routes by shape (favicon.ico, /health/x) are left out.
func (h *PageHandler) countNotFound(c *gin.Context) {
	if h.metrics == nil || !stateShaped(c.Param("state")) {
		return
	}
	h.metrics.PageNotFound.Inc()
}

// stateShaped reports whether s could be a state code: two or three letters
func stateShaped(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func (h *PageHandler) observePage(result *service.BuildPageResult) {
	if h.metrics == nil {
		return
	}
	page := result.Page
	h.metrics.PageViews.WithLabelValues(page.State.Code, page.PracticeArea.Slug).Inc()
	if page.Content == nil {
		h.metrics.ContentMissing.WithLabelValues(page.State.Code, page.PracticeArea.Slug).Inc()
	}
}
