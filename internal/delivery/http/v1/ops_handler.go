package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// recentErrorsShown caps the recent-errors slice in the ops payload
const recentErrorsShown = 10

type OpsHandler struct {
	classifier *apperror.Classifier
	limiter    ratelimit.Store
}

// NewOpsHandler registers the in-process diagnostics routes. Only wired
// when DEBUG_ENDPOINTS is set; never expose these in production.
func NewOpsHandler(ops *gin.RouterGroup, classifier *apperror.Classifier, limiter ratelimit.Store) {
	handler := &OpsHandler{
		classifier: classifier,
		limiter:    limiter,
	}

	ops.GET("/errors", handler.GetErrorStats)
	ops.POST("/rate-limit/clear", handler.ClearRateLimit)
}

// GetErrorStats returns classification statistics and the most recent
// entries from the bounded in-memory error log.
func (h *OpsHandler) GetErrorStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats":  h.classifier.Stats(),
		"recent": h.classifier.Recent(recentErrorsShown),
	})
}

// ClearRateLimit drops the caller's current rate-limit window
func (h *OpsHandler) ClearRateLimit(c *gin.Context) {
	identity := middleware.ClientIdentity(c)
	h.limiter.Clear(c.Request.Context(), identity)
	response.Success(c, http.StatusOK, "Rate limit cleared for testing")
}
