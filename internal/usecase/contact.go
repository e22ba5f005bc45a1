package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/security"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	emailService *email.Service
	validate     *validator.Validate
	secLogger    *security.SecurityLogger
	now          func() time.Time
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(emailService *email.Service, validate *validator.Validate, secLogger *security.SecurityLogger) domain.ContactUsecase {
	return &contactUsecase{
		emailService: emailService,
		validate:     validate,
		secLogger:    secLogger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SendContactMessage validates and sanitizes the submission, then delivers
// it through the email service. Every failure comes back as an AppError so
// the delivery layer never sees raw internals.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest, clientIP string) error {
	if err := uc.validate.Struct(req); err != nil {
		msgs := validation.FormatValidationErrors(err)
		uc.secLogger.Log(security.SecurityEvent{
			Event:    security.EventValidationFailed,
			IP:       clientIP,
			Endpoint: "/v1/contact",
			Details:  map[string]interface{}{"errors": msgs},
		})
		return apperror.Validation(strings.Join(msgs, ", "))
	}

	sanitized := email.ContactEmailData{
		FirstName: validation.SanitizeInput(req.FirstName),
		LastName:  validation.SanitizeInput(req.LastName),
		Email:     validation.SanitizeEmail(req.Email),
		Subject:   validation.SanitizeInput(req.Subject),
		Message:   validation.SanitizeInput(req.Message),
		ClientIP:  clientIP,
		SentAt:    uc.now(),
	}

	if !uc.emailService.IsConfigured() {
		uc.secLogger.Log(security.SecurityEvent{
			Event:   security.EventMissingConfig,
			IP:      clientIP,
			Details: map[string]interface{}{"service": "email"},
		})
		return apperror.MissingConfig("Email service not configured")
	}

	if err := uc.emailService.SendContactEmail(ctx, sanitized); err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			return apperror.MissingConfig("Email service not configured")
		}
		uc.secLogger.Log(security.SecurityEvent{
			Event:   security.EventSendFailed,
			IP:      clientIP,
			Details: map[string]interface{}{"error": err.Error()},
		})
		return apperror.Transport("Unable to send email at this time. Please try again later.", err)
	}

	uc.secLogger.Log(security.SecurityEvent{
		Event:   security.EventEmailSent,
		IP:      clientIP,
		Details: map[string]interface{}{"email": sanitized.Email, "subject": sanitized.Subject},
	})
	return nil
}
