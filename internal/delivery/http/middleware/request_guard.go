package middleware

import (
	"strings"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const maxUserAgentLength = 500

// RequestGuard rejects obviously automated clients before they reach any
// handler. Scrapers that spoof a browser UA get through; this only filters
// the honest ones.
func RequestGuard(classifier *apperror.Classifier, secLogger *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ua := c.GetHeader("User-Agent")
		lower := strings.ToLower(ua)

		suspicious := len(ua) > maxUserAgentLength ||
			strings.Contains(lower, "bot") ||
			strings.Contains(lower, "crawler") ||
			strings.Contains(lower, "spider")

		if suspicious {
			identity := ClientIdentity(c)
			secLogger.LogRequestBlocked(identity, ua, c.GetString("RequestID"), "suspicious_user_agent")
			appErr := classifier.Classify(apperror.SuspiciousAgent(), apperror.RequestContext{
				Path:      c.Request.URL.Path,
				IP:        identity,
				UserAgent: ua,
			})
			response.Error(c, appErr)
			c.Abort()
			return
		}

		c.Next()
	}
}
