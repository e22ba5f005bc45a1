package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/ratelimit"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	limiter   ratelimit.Store
	limit     int
	secLogger *security.SecurityLogger
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter ratelimit.Store, limit int, secLogger *security.SecurityLogger) {
	handler := &ContactHandler{
		contactUC: contactUC,
		limiter:   limiter,
		limit:     limit,
		secLogger: secLogger,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.SuccessBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      429      {object}  response.ErrorBody
// @Failure      503      {object}  response.ErrorBody
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// Rejected before body parsing
	if c.ContentType() != "application/json" {
		_ = c.Error(apperror.InvalidContentType())
		return
	}

	// The strict per-endpoint limit runs before any field inspection, so
	// even malformed submissions consume quota.
	identity := middleware.ClientIdentity(c)
	if h.limiter.Limited(c.Request.Context(), identity, h.limit) {
		h.secLogger.LogRateLimitTriggered(identity, c.GetHeader("User-Agent"), c.GetString("RequestID"), c.Request.URL.Path)
		_ = c.Error(apperror.RateLimited("Too many requests. Please try again later."))
		return
	}

	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.Validation("Invalid JSON in request body"))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req, identity); err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message sent successfully! I'll get back to you soon.")
}
