package response

import (
	"time"

	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// SuccessBody is the fixed success envelope for the contact endpoint
type SuccessBody struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ErrorBody is the failure envelope: one human-readable sentence, a
// machine-readable code and a timestamp. Nothing else crosses the boundary.
type ErrorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Timestamp string `json:"timestamp"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, SuccessBody{
		Message: message,
		Success: true,
	})
}

// Error sends a classified error response
func Error(c *gin.Context, appErr *apperror.AppError) {
	c.Header("X-Error-Code", appErr.Code)
	c.Header("X-Error-Type", string(appErr.Kind))
	c.JSON(appErr.StatusCode, ErrorBody{
		Error:     appErr.Message,
		Code:      appErr.Code,
		Timestamp: appErr.Timestamp.Format(time.RFC3339),
	})
}
