package middleware

import (
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler picks up errors appended to the context by handlers, runs
// them through the classifier and writes the uniform failure envelope.
// Internal error details never reach the client; the classifier logs them
// server-side.
func ErrorHandler(classifier *apperror.Classifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		appErr := classifier.Classify(err, apperror.RequestContext{
			Path:      c.Request.URL.Path,
			IP:        ClientIdentity(c),
			UserAgent: c.GetHeader("User-Agent"),
		})
		response.Error(c, appErr)
	}
}
