package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/ratelimit"
	"go-portfolio-backend/pkg/security"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMailer struct {
	calls   int
	failAll bool
	lastMsg *email.Message
}

func (m *stubMailer) Send(_ context.Context, msg *email.Message) (*email.Result, error) {
	m.calls++
	m.lastMsg = msg
	if m.failAll {
		return nil, errors.New("connection refused")
	}
	return &email.Result{ID: "msg_1"}, nil
}

type testEnv struct {
	router *gin.Engine
	mailer *stubMailer
	store  *ratelimit.MemoryStore
}

type envOption func(*config.Config, *testEnv)

func withUnconfiguredMailer() envOption {
	return func(_ *config.Config, env *testEnv) { env.mailer = nil }
}

func withFailingMailer() envOption {
	return func(_ *config.Config, env *testEnv) { env.mailer.failAll = true }
}

func withDebugEndpoints() envOption {
	return func(cfg *config.Config, _ *testEnv) { cfg.DebugEndpoints = true }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init(slog.LevelError)

	cfg := &config.Config{
		Port:                      "8080",
		Environment:               "test",
		FrontendURL:               "http://localhost:3000",
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 6,
		RateLimitGlobalThreshold:  100,
		SendTimeoutSeconds:        10,
	}

	env := &testEnv{mailer: &stubMailer{}}
	for _, opt := range opts {
		opt(cfg, env)
	}

	env.store = ratelimit.NewMemoryStore(time.Duration(cfg.RateLimitWindowSeconds) * time.Second)

	var mailer email.Mailer
	if env.mailer != nil {
		mailer = env.mailer
	}
	svc := email.NewService(mailer, "site@example.com", "me@example.com",
		email.WithRetryPolicy(email.RetryPolicy{
			MaxAttempts: 3,
			Backoff:     email.LinearBackoff(time.Second),
			Sleep:       func(time.Duration) {},
		}))

	validate := validator.New()
	validation.RegisterValidators(validate)

	secLogger := security.NewSecurityLogger("portfolio-backend", "test")
	classifier := apperror.NewClassifier(logger.Log)

	env.router = v1.NewRouter(v1.RouterDeps{
		ContactUC:   usecase.NewContactUsecase(svc, validate, secLogger),
		PortfolioUC: usecase.NewPortfolioUsecase(),
		Limiter:     env.store,
		Classifier:  classifier,
		SecLogger:   secLogger,
		Config:      cfg,
	})
	return env
}

func validPayload() map[string]string {
	return map[string]string{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"email":     "ada@example.com",
		"subject":   "Hello",
		"message":   "I enjoyed your projects.",
	}
}

func postContact(env *testEnv, contentType string, body []byte, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", "Mozilla/5.0")
	if ip != "" {
		req.Header.Set("X-Forwarded-For", ip)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func postJSON(env *testEnv, payload map[string]string, ip string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	return postContact(env, "application/json", body, ip)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSubmitContact_Success(t *testing.T) {
	env := newTestEnv(t)

	w := postJSON(env, validPayload(), "1.2.3.4")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Message string `json:"message"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Message sent successfully! I'll get back to you soon.", body.Message)

	require.Equal(t, 1, env.mailer.calls)
	assert.Contains(t, env.mailer.lastMsg.HTML, "Ada Lovelace")
	assert.Contains(t, env.mailer.lastMsg.HTML, "1.2.3.4")
}

func TestSubmitContact_RejectsWrongContentType(t *testing.T) {
	env := newTestEnv(t)

	w := postContact(env, "text/plain", []byte("hello"), "1.2.3.4")

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "INVALID_CONTENT_TYPE", body["code"])
	assert.Equal(t, "INVALID_CONTENT_TYPE", w.Header().Get("X-Error-Code"))
	assert.Equal(t, "SECURITY", w.Header().Get("X-Error-Type"))
	assert.Zero(t, env.mailer.calls)
}

func TestSubmitContact_MalformedJSON(t *testing.T) {
	env := newTestEnv(t)

	w := postContact(env, "application/json", []byte("{not json"), "1.2.3.4")

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Equal(t, "Invalid JSON in request body", body["error"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestSubmitContact_ValidationErrorEnvelope(t *testing.T) {
	env := newTestEnv(t)

	payload := validPayload()
	payload["email"] = "not-an-email"
	payload["message"] = ""
	w := postJSON(env, payload, "1.2.3.4")

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Contains(t, body["error"], "Invalid email format")
	assert.Contains(t, body["error"], "Message is required")
	assert.Equal(t, "VALIDATION", w.Header().Get("X-Error-Type"))
	assert.Zero(t, env.mailer.calls)
}

func TestSubmitContact_ThrottleRunsBeforeValidation(t *testing.T) {
	env := newTestEnv(t)

	// Malformed submissions still consume quota since the throttle check
	// happens before the body is inspected.
	var w *httptest.ResponseRecorder
	for i := 0; i < 10; i++ {
		w = postContact(env, "application/json", []byte("{not json"), "9.9.9.9")
		if w.Code == http.StatusTooManyRequests {
			break
		}
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", body["code"])
	assert.Equal(t, "Too many requests. Please try again later.", body["error"])

	// A well-formed submission from the same identity is also refused
	w = postJSON(env, validPayload(), "9.9.9.9")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Zero(t, env.mailer.calls)

	// A different identity is unaffected
	w = postJSON(env, validPayload(), "8.8.8.8")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitContact_SuspiciousUserAgentBlocked(t *testing.T) {
	env := newTestEnv(t)

	body, _ := json.Marshal(validPayload())
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Googlebot/2.1")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "SUSPICIOUS_USER_AGENT", w.Header().Get("X-Error-Code"))
	assert.Zero(t, env.mailer.calls)
}

func TestSubmitContact_MissingConfig(t *testing.T) {
	env := newTestEnv(t, withUnconfiguredMailer())

	w := postJSON(env, validPayload(), "1.2.3.4")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "MISSING_CONFIG", body["code"])
	assert.Equal(t, "Email service not configured", body["error"])
}

func TestSubmitContact_TransportFailure(t *testing.T) {
	env := newTestEnv(t, withFailingMailer())

	w := postJSON(env, validPayload(), "1.2.3.4")

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "EMAIL_SERVICE_ERROR", body["code"])
	assert.Equal(t, "Unable to send email at this time. Please try again later.", body["error"])
	assert.NotContains(t, body["error"], "connection refused")
	assert.Equal(t, 3, env.mailer.calls)
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "System operational")
	// Security headers apply to every response
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestOpsEndpointsHiddenByDefault(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/errors", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOpsErrorStats(t *testing.T) {
	env := newTestEnv(t, withDebugEndpoints())

	// Produce one classified error
	w := postContact(env, "text/plain", []byte("x"), "1.2.3.4")
	require.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/ops/errors", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Stats struct {
			Total  int            `json:"total"`
			ByKind map[string]int `json:"by_type"`
		} `json:"stats"`
		Recent []json.RawMessage `json:"recent"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Stats.Total)
	assert.Equal(t, 1, body.Stats.ByKind["SECURITY"])
	assert.Len(t, body.Recent, 1)
}

func TestOpsRateLimitClear(t *testing.T) {
	env := newTestEnv(t, withDebugEndpoints())

	// Exhaust the contact quota
	var w *httptest.ResponseRecorder
	for i := 0; i < 10; i++ {
		w = postJSON(env, validPayload(), "5.5.5.5")
		if w.Code == http.StatusTooManyRequests {
			break
		}
	}
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/ops/rate-limit/clear", nil)
	req.Header.Set("X-Forwarded-For", "5.5.5.5")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(env, validPayload(), "5.5.5.5")
	assert.Equal(t, http.StatusOK, w.Code)
}
