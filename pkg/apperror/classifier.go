package apperror

import (
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"
)

// defaultMaxLog bounds the in-process diagnostics log.
const defaultMaxLog = 1000

// RequestContext carries the request metadata stamped onto classified errors.
type RequestContext struct {
	Path      string
	IP        string
	UserAgent string
}

// Classifier converts arbitrary faults into AppErrors and keeps a bounded
// in-memory log of everything it classified. Construct one per process and
// inject it; there is no package-level instance.
type Classifier struct {
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	log    []*AppError
	maxLog int
}

type Option func(*Classifier)

// WithMaxLog overrides the bounded log size.
func WithMaxLog(n int) Option {
	return func(c *Classifier) { c.maxLog = n }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Classifier) { c.now = now }
}

func NewClassifier(logger *slog.Logger, opts ...Option) *Classifier {
	c := &Classifier{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		maxLog: defaultMaxLog,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify maps any fault into the closed taxonomy, stamps request context
// and a fresh timestamp, records the result, and returns it. Calling it
// twice with the same fault yields AppErrors differing only in timestamp.
func (c *Classifier) Classify(err error, rc RequestContext) *AppError {
	appErr := c.toAppError(err)
	appErr.Timestamp = c.now()
	appErr.Path = rc.Path
	appErr.IP = rc.IP
	appErr.UserAgent = rc.UserAgent

	c.record(appErr)
	return appErr
}

func (c *Classifier) toAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.clone()
	}

	// Connection-level faults from the outbound transport
	var netErr net.Error
	if errors.As(err, &netErr) {
		return Transport("Network connection error", err)
	}

	return Unknown(err)
}

// record appends to the bounded log, truncating the oldest entry first,
// and emits one structured log event.
func (c *Classifier) record(e *AppError) {
	c.mu.Lock()
	c.log = append(c.log, e)
	if len(c.log) > c.maxLog {
		c.log = c.log[len(c.log)-c.maxLog:]
	}
	c.mu.Unlock()

	if c.logger == nil {
		return
	}
	attrs := []any{
		"type", string(e.Kind),
		"severity", string(e.Severity),
		"code", e.Code,
		"status", e.StatusCode,
		"path", e.Path,
		"ip", e.IP,
	}
	if e.Err != nil {
		// Raw internals are logged server-side only, never returned
		attrs = append(attrs, "error", e.Err.Error())
	}
	switch e.Severity {
	case SeverityCritical, SeverityHigh:
		c.logger.Error(e.Message, attrs...)
	case SeverityMedium:
		c.logger.Warn(e.Message, attrs...)
	default:
		c.logger.Info(e.Message, attrs...)
	}
}

// Stats summarizes the classified errors currently held in the log.
type Stats struct {
	Total      int              `json:"total"`
	ByKind     map[Kind]int     `json:"by_type"`
	BySeverity map[Severity]int `json:"by_severity"`
}

func (c *Classifier) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Total:      len(c.log),
		ByKind:     make(map[Kind]int),
		BySeverity: make(map[Severity]int),
	}
	for _, e := range c.log {
		s.ByKind[e.Kind]++
		s.BySeverity[e.Severity]++
	}
	return s
}

// Recent returns up to n of the most recently classified errors,
// oldest first.
func (c *Classifier) Recent(n int) []*AppError {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n > len(c.log) {
		n = len(c.log)
	}
	out := make([]*AppError, n)
	copy(out, c.log[len(c.log)-n:])
	return out
}
