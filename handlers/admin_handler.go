package handlers

import (
	"net/http"
	"strings"

	"ausverity-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler exposes content operations to operators
type AdminHandler struct {
	contentService *service.ContentService
	tokenHash      []byte
	logger         *zap.Logger
}

// NewAdminHandler creates a new admin handler. tokenHash is the bcrypt hash
// of the bearer token operators must present.
func NewAdminHandler(contentService *service.ContentService, tokenHash string, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{
		contentService: contentService,
		tokenHash:      []byte(tokenHash),
		logger:         logger,
	}
}

// RequireToken rejects requests without a valid bearer token
func (h *AdminHandler) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
			return
		}
		if len(h.tokenHash) == 0 || bcrypt.CompareHashAndPassword(h.tokenHash, []byte(token)) != nil {
			h.logger.Warn("rejected admin token", zap.String("client_ip", c.ClientIP()))
			abortWithError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid bearer token")
			return
		}
		c.Next()
	}
}

// ReloadContent handles POST /api/admin/content/reload
func (h *AdminHandler) ReloadContent(c *gin.Context) {
	result, err := h.contentService.Reload(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "RELOAD_FAILED", err.Error())
		return
	}

	respondOK(c, http.StatusOK, result)
}

// GetCoverage handles GET /api/admin/content/coverage
func (h *AdminHandler) GetCoverage(c *gin.Context) {
	respondOK(c, http.StatusOK, h.contentService.Coverage())
}
