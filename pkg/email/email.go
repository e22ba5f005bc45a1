package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"
)

// Message is the outbound email handed to the transport.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Result is what a transport reports back from a call that did not fail
// outright. Err carries a provider-reported in-band error; such soft errors
// are treated as delivery failures but are not retried.
type Result struct {
	ID  string
	Err string
}

// Mailer is the opaque delivery collaborator.
type Mailer interface {
	Send(ctx context.Context, msg *Message) (*Result, error)
}

// ErrNotConfigured is returned when a send is attempted without credentials.
var ErrNotConfigured = errors.New("email service is not configured")

// ErrSendFailed wraps the transport failure kept server-side after the
// retry budget is exhausted or the provider reported an in-band error.
var ErrSendFailed = errors.New("failed to send contact email")

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	FirstName string
	LastName  string
	Email     string
	Subject   string
	Message   string
	ClientIP  string
	SentAt    time.Time
}

// Service composes contact emails and delivers them through the configured
// transport with bounded retries.
type Service struct {
	mailer      Mailer
	fromEmail   string
	toEmail     string
	retry       RetryPolicy
	sendTimeout time.Duration
}

type ServiceOption func(*Service)

// WithRetryPolicy overrides the default retry behavior.
func WithRetryPolicy(p RetryPolicy) ServiceOption {
	return func(s *Service) { s.retry = p }
}

// WithSendTimeout bounds each individual transport attempt.
func WithSendTimeout(d time.Duration) ServiceOption {
	return func(s *Service) { s.sendTimeout = d }
}

// NewService creates the contact email service. Pass a nil mailer when no
// transport credential is configured; IsConfigured will report it.
func NewService(mailer Mailer, fromEmail, toEmail string, opts ...ServiceOption) *Service {
	s := &Service{
		mailer:      mailer,
		fromEmail:   fromEmail,
		toEmail:     toEmail,
		retry:       DefaultRetryPolicy(),
		sendTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsConfigured checks whether the service can actually deliver mail
func (s *Service) IsConfigured() bool {
	return s.mailer != nil && s.fromEmail != "" && s.toEmail != ""
}

// contactEmailTemplate is the HTML template for contact form emails
const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Contact Form Submission</title>
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #1e3a8a 0%, #3b82f6 100%); color: white; padding: 30px; border-radius: 12px; margin-bottom: 30px;">
        <h1 style="margin: 0; font-size: 28px; font-weight: 600;">New Contact Form Submission</h1>
        <p style="margin: 10px 0 0 0; opacity: 0.9;">Portfolio Website</p>
    </div>
    <div style="background: #f8fafc; padding: 25px; border-radius: 12px; margin-bottom: 25px; border-left: 4px solid #3b82f6;">
        <h2 style="color: #1e3a8a; margin: 0 0 20px 0; font-size: 20px;">Contact Information</h2>
        <div>
            <strong style="color: #374151;">Name:</strong>
            <span style="margin-left: 8px;">{{.FirstName}} {{.LastName}}</span>
        </div>
        <div>
            <strong style="color: #374151;">Email:</strong>
            <a href="mailto:{{.Email}}" style="margin-left: 8px; color: #3b82f6; text-decoration: none;">{{.Email}}</a>
        </div>
        <div>
            <strong style="color: #374151;">Subject:</strong>
            <span style="margin-left: 8px;">{{.Subject}}</span>
        </div>
    </div>
    <div style="background: #f1f5f9; padding: 25px; border-radius: 12px; margin-bottom: 25px;">
        <h2 style="color: #1e3a8a; margin: 0 0 20px 0; font-size: 20px;">Message</h2>
        <div style="white-space: pre-wrap; line-height: 1.7; color: #374151;">{{.Message}}</div>
    </div>
    <div style="background: #f9fafb; padding: 20px; border-radius: 8px; border-top: 1px solid #e5e7eb;">
        <p style="margin: 0; font-size: 14px; color: #6b7280;">
            This message was sent from the portfolio website contact form<br>
            Sent on: {{.SentAt.Format "Jan 2, 2006 15:04:05 MST"}}<br>
            IP: {{.ClientIP}}
        </p>
    </div>
</body>
</html>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

// RenderContactEmail produces the HTML body for a submission
func RenderContactEmail(data ContactEmailData) (string, error) {
	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// SendContactEmail renders and delivers a contact form email to the
// configured recipient, retrying transport failures per the retry policy.
// Provider-reported soft errors are surfaced without retrying.
func (s *Service) SendContactEmail(ctx context.Context, data ContactEmailData) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	body, err := RenderContactEmail(data)
	if err != nil {
		return err
	}

	msg := &Message{
		From:    s.fromEmail,
		To:      []string{s.toEmail},
		Subject: fmt.Sprintf("Contact Form: %s", data.Subject),
		HTML:    body,
	}

	var lastErr error
	for attempt := 1; attempt <= s.retry.MaxAttempts; attempt++ {
		result, err := s.send(ctx, msg)
		if err == nil {
			if result != nil && result.Err != "" {
				// Soft in-band failure from a successful call; not retried
				return fmt.Errorf("%w: %s", ErrSendFailed, result.Err)
			}
			return nil
		}

		lastErr = err
		if attempt == s.retry.MaxAttempts {
			break
		}
		s.retry.Wait(attempt)
	}

	return fmt.Errorf("%w: %v", ErrSendFailed, lastErr)
}

func (s *Service) send(ctx context.Context, msg *Message) (*Result, error) {
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}
	return s.mailer.Send(ctx, msg)
}
