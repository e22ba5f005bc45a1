package apperror

import (
	"net/http"
	"time"
)

// Kind groups errors into the closed taxonomy exposed to callers.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindSecurity   Kind = "SECURITY"
	KindTransport  Kind = "TRANSPORT"
	KindServer     Kind = "SERVER"
	KindUnknown    Kind = "UNKNOWN"
)

// Severity indicates how urgently an error should be looked at server-side.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Machine-readable error codes returned alongside every failure.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeInvalidContentType = "INVALID_CONTENT_TYPE"
	CodeSuspiciousAgent    = "SUSPICIOUS_USER_AGENT"
	CodeMissingConfig      = "MISSING_CONFIG"
	CodeEmailService       = "EMAIL_SERVICE_ERROR"
	CodeUnknown            = "UNKNOWN_ERROR"
)

// AppError is the uniform error representation every fault is converted into
// before reaching the caller. Only Message, Code and Timestamp cross the
// HTTP boundary; Err stays server-side.
type AppError struct {
	Kind       Kind      `json:"type"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message"`
	Code       string    `json:"code"`
	StatusCode int       `json:"status_code"`
	Timestamp  time.Time `json:"timestamp"`
	Path       string    `json:"path,omitempty"`
	IP         string    `json:"ip,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	Err        error     `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// clone returns a shallow copy so classification never mutates the original.
func (e *AppError) clone() *AppError {
	c := *e
	return &c
}

func New(kind Kind, severity Severity, statusCode int, code, message string, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Severity:   severity,
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC(),
		Err:        err,
	}
}

// Validation reports a client-fixable input error.
func Validation(message string) *AppError {
	return New(KindValidation, SeverityMedium, http.StatusBadRequest, CodeValidation, message, nil)
}

// RateLimited reports an exhausted request budget.
func RateLimited(message string) *AppError {
	return New(KindSecurity, SeverityHigh, http.StatusTooManyRequests, CodeRateLimitExceeded, message, nil)
}

// InvalidContentType reports a request rejected before body parsing.
func InvalidContentType() *AppError {
	return New(KindSecurity, SeverityMedium, http.StatusBadRequest, CodeInvalidContentType, "Invalid content type", nil)
}

// SuspiciousAgent reports a blocked client.
func SuspiciousAgent() *AppError {
	return New(KindSecurity, SeverityHigh, http.StatusForbidden, CodeSuspiciousAgent, "Invalid request", nil)
}

// MissingConfig reports an operator-fixable precondition failure. The
// message never names the missing credential.
func MissingConfig(message string) *AppError {
	return New(KindSecurity, SeverityCritical, http.StatusInternalServerError, CodeMissingConfig, message, nil)
}

// Transport reports an outbound delivery failure after the retry budget is
// spent. The underlying error is kept server-side only.
func Transport(message string, err error) *AppError {
	return New(KindTransport, SeverityMedium, http.StatusServiceUnavailable, CodeEmailService, message, err)
}

// Unknown is the catch-all for unrecognized fault shapes.
func Unknown(err error) *AppError {
	return New(KindUnknown, SeverityMedium, http.StatusInternalServerError, CodeUnknown,
		"An unexpected error occurred. Please try again later.", err)
}
