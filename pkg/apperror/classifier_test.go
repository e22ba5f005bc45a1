package apperror_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"go-portfolio-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClassifier(opts ...apperror.Option) *apperror.Classifier {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return apperror.NewClassifier(logger, opts...)
}

func TestMappingTable(t *testing.T) {
	c := newClassifier()
	rc := apperror.RequestContext{Path: "/v1/contact", IP: "1.2.3.4"}

	tests := []struct {
		name       string
		err        error
		wantKind   apperror.Kind
		wantCode   string
		wantStatus int
	}{
		{"rate limited", apperror.RateLimited("slow down"), apperror.KindSecurity, apperror.CodeRateLimitExceeded, http.StatusTooManyRequests},
		{"validation", apperror.Validation("Email is required"), apperror.KindValidation, apperror.CodeValidation, http.StatusBadRequest},
		{"content type", apperror.InvalidContentType(), apperror.KindSecurity, apperror.CodeInvalidContentType, http.StatusBadRequest},
		{"missing config", apperror.MissingConfig("Email service not configured"), apperror.KindSecurity, apperror.CodeMissingConfig, http.StatusInternalServerError},
		{"transport", apperror.Transport("send failed", errors.New("dial tcp: refused")), apperror.KindTransport, apperror.CodeEmailService, http.StatusServiceUnavailable},
		{"unrecognized fault", errors.New("something odd"), apperror.KindUnknown, apperror.CodeUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.err, rc)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.Equal(t, "/v1/contact", got.Path)
			assert.Equal(t, "1.2.3.4", got.IP)
		})
	}
}

func TestClassificationIsIdempotentUpToTimestamp(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := newClassifier(apperror.WithClock(func() time.Time {
		ts = ts.Add(time.Second)
		return ts
	}))

	fault := apperror.Transport("send failed", errors.New("boom"))
	rc := apperror.RequestContext{Path: "/v1/contact", IP: "1.2.3.4", UserAgent: "test"}

	first := c.Classify(fault, rc)
	second := c.Classify(fault, rc)

	assert.NotEqual(t, first.Timestamp, second.Timestamp)

	// Strip timestamps; everything else must match
	a, b := *first, *second
	a.Timestamp, b.Timestamp = time.Time{}, time.Time{}
	assert.Equal(t, a, b)
}

func TestClassifyDoesNotMutateOriginal(t *testing.T) {
	c := newClassifier()

	fault := apperror.Validation("Email is required")
	origTS := fault.Timestamp

	got := c.Classify(fault, apperror.RequestContext{Path: "/v1/contact"})
	assert.NotSame(t, fault, got)
	assert.Equal(t, origTS, fault.Timestamp)
	assert.Empty(t, fault.Path)
}

func TestWrappedAppErrorIsUnwrapped(t *testing.T) {
	c := newClassifier()

	inner := apperror.RateLimited("slow down")
	wrapped := fmt.Errorf("handler: %w", inner)

	got := c.Classify(wrapped, apperror.RequestContext{})
	assert.Equal(t, apperror.CodeRateLimitExceeded, got.Code)
	assert.Equal(t, http.StatusTooManyRequests, got.StatusCode)
}

func TestBoundedLogTruncatesOldestFirst(t *testing.T) {
	c := newClassifier(apperror.WithMaxLog(5))

	for i := 0; i < 8; i++ {
		c.Classify(apperror.Validation(fmt.Sprintf("fault %d", i)), apperror.RequestContext{})
	}

	stats := c.Stats()
	assert.Equal(t, 5, stats.Total)

	recent := c.Recent(10)
	require.Len(t, recent, 5)
	assert.Equal(t, "fault 3", recent[0].Message)
	assert.Equal(t, "fault 7", recent[4].Message)
}

func TestStatsGroupsByKind(t *testing.T) {
	c := newClassifier()

	c.Classify(apperror.Validation("a"), apperror.RequestContext{})
	c.Classify(apperror.Validation("b"), apperror.RequestContext{})
	c.Classify(apperror.RateLimited("c"), apperror.RequestContext{})

	stats := c.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByKind[apperror.KindValidation])
	assert.Equal(t, 1, stats.ByKind[apperror.KindSecurity])
}
