package middleware

import (
	"strconv"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/ratelimit"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for the API-wide rate limit
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Window length in seconds, reported via Retry-After
	WindowSeconds int
	// Shared per-identity store. The contact handler checks the same store
	// with the same keys, so both limits draw from one budget.
	Store ratelimit.Store
}

// RateLimitMiddleware applies the loose API-wide fixed-window limit to
// every request.
func RateLimitMiddleware(cfg RateLimitConfig, classifier *apperror.Classifier, secLogger *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := ClientIdentity(c)

		if cfg.Store.Limited(c.Request.Context(), identity, cfg.Limit) {
			secLogger.LogRateLimitTriggered(identity, c.GetHeader("User-Agent"), c.GetString("RequestID"), c.Request.URL.Path)

			c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(cfg.WindowSeconds))

			appErr := classifier.Classify(apperror.RateLimited("Too many requests. Please try again later."), apperror.RequestContext{
				Path:      c.Request.URL.Path,
				IP:        identity,
				UserAgent: c.GetHeader("User-Agent"),
			})
			response.Error(c, appErr)
			c.Abort()
			return
		}

		c.Next()
	}
}
