package email_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go-portfolio-backend/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedMailer fails a fixed number of times, then succeeds (or keeps
// returning a soft error).
type scriptedMailer struct {
	failures int
	softErr  string
	calls    int
	lastMsg  *email.Message
}

func (m *scriptedMailer) Send(_ context.Context, msg *email.Message) (*email.Result, error) {
	m.calls++
	m.lastMsg = msg
	if m.calls <= m.failures {
		return nil, errors.New("dial tcp 127.0.0.1:443: connect: connection refused")
	}
	if m.softErr != "" {
		return &email.Result{Err: m.softErr}, nil
	}
	return &email.Result{ID: "msg_123"}, nil
}

func testPolicy(slept *[]time.Duration) email.RetryPolicy {
	return email.RetryPolicy{
		MaxAttempts: 3,
		Backoff:     email.LinearBackoff(time.Second),
		Sleep: func(d time.Duration) {
			*slept = append(*slept, d)
		},
	}
}

func testData() email.ContactEmailData {
	return email.ContactEmailData{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Subject:   "Hello",
		Message:   "I enjoyed your backtester project.",
		ClientIP:  "1.2.3.4",
		SentAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSendSucceedsOnThirdAttempt(t *testing.T) {
	mailer := &scriptedMailer{failures: 2}
	var slept []time.Duration
	svc := email.NewService(mailer, "site@example.com", "me@example.com",
		email.WithRetryPolicy(testPolicy(&slept)))

	err := svc.SendContactEmail(context.Background(), testData())
	require.NoError(t, err)

	assert.Equal(t, 3, mailer.calls)
	// Linear backoff: 1s after the first failure, 2s after the second
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, slept)
}

func TestSendFailsAfterRetryBudget(t *testing.T) {
	mailer := &scriptedMailer{failures: 10}
	var slept []time.Duration
	svc := email.NewService(mailer, "site@example.com", "me@example.com",
		email.WithRetryPolicy(testPolicy(&slept)))

	err := svc.SendContactEmail(context.Background(), testData())
	require.Error(t, err)

	assert.ErrorIs(t, err, email.ErrSendFailed)
	assert.Equal(t, 3, mailer.calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, slept)
}

func TestSoftErrorIsNotRetried(t *testing.T) {
	mailer := &scriptedMailer{softErr: "daily quota exceeded"}
	var slept []time.Duration
	svc := email.NewService(mailer, "site@example.com", "me@example.com",
		email.WithRetryPolicy(testPolicy(&slept)))

	err := svc.SendContactEmail(context.Background(), testData())
	require.Error(t, err)

	assert.ErrorIs(t, err, email.ErrSendFailed)
	assert.Equal(t, 1, mailer.calls)
	assert.Empty(t, slept)
}

func TestNotConfigured(t *testing.T) {
	svc := email.NewService(nil, "site@example.com", "me@example.com")
	err := svc.SendContactEmail(context.Background(), testData())
	assert.ErrorIs(t, err, email.ErrNotConfigured)

	mailer := &scriptedMailer{}
	svc = email.NewService(mailer, "site@example.com", "")
	err = svc.SendContactEmail(context.Background(), testData())
	assert.ErrorIs(t, err, email.ErrNotConfigured)
	assert.Zero(t, mailer.calls)
}

func TestMessageShape(t *testing.T) {
	mailer := &scriptedMailer{}
	svc := email.NewService(mailer, "site@example.com", "me@example.com")

	require.NoError(t, svc.SendContactEmail(context.Background(), testData()))
	require.NotNil(t, mailer.lastMsg)

	assert.Equal(t, "site@example.com", mailer.lastMsg.From)
	assert.Equal(t, []string{"me@example.com"}, mailer.lastMsg.To)
	assert.Equal(t, "Contact Form: Hello", mailer.lastMsg.Subject)
	assert.Contains(t, mailer.lastMsg.HTML, "Ada Lovelace")
}

func TestRenderContactEmail(t *testing.T) {
	body, err := email.RenderContactEmail(testData())
	require.NoError(t, err)

	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "ada@example.com")
	assert.Contains(t, body, "Hello")
	assert.Contains(t, body, "I enjoyed your backtester project.")
	assert.Contains(t, body, "1.2.3.4")
}

func TestRenderEscapesResidualMarkup(t *testing.T) {
	// Sanitization strips angle brackets before rendering; even if one
	// slipped through, the template escapes it.
	data := testData()
	data.Message = "x <img src=a>"

	body, err := email.RenderContactEmail(data)
	require.NoError(t, err)
	assert.NotContains(t, body, "<img")
	assert.True(t, strings.Contains(body, "&lt;img") || !strings.Contains(body, "img src"))
}
