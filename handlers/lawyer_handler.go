package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ausverity-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LawyerHandler handles lawyer search requests
type LawyerHandler struct {
	lawyerService *service.LawyerService
	logger        *zap.Logger
}

// NewLawyerHandler creates a new lawyer handler
func NewLawyerHandler(lawyerService *service.LawyerService, logger *zap.Logger) *LawyerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LawyerHandler{
		lawyerService: lawyerService,
		logger:        logger,
	}
}

// SearchLawyers handles GET /api/lawyers
func (h *LawyerHandler) SearchLawyers(c *gin.Context) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_QUERY", "limit must be an integer")
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_QUERY", "offset must be an integer")
		return
	}

	result, err := h.lawyerService.Search(c.Request.Context(), service.SearchLawyersRequest{
		State:    c.Query("state"),
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSearch):
			respondError(c, http.StatusBadRequest, "INVALID_SEARCH", err.Error())
		case errors.Is(err, service.ErrSearchUnavailable):
			respondError(c, http.StatusServiceUnavailable, "SEARCH_UNAVAILABLE", "Lawyer search is not available")
		default:
			h.logger.Error("lawyer search failed", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search lawyers")
		}
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"lawyers": result.Lawyers,
		"limit":   result.Limit,
		"offset":  result.Offset,
	})
}

// queryInt returns 0 for an absent parameter
func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
