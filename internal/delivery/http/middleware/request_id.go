package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID attaches a unique ID to every request for log correlation.
// An inbound X-Request-ID is honored so upstream proxies can trace through.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("RequestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// ClientIdentity derives the throttling identity from forwarded-IP headers.
// This is not an authenticated identity; absent headers collapse every
// client into the "unknown" bucket.
func ClientIdentity(c *gin.Context) string {
	if xff := c.GetHeader("x-forwarded-for"); xff != "" {
		// First hop is the original client
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if realIP := c.GetHeader("x-real-ip"); realIP != "" {
		return realIP
	}
	return "unknown"
}
