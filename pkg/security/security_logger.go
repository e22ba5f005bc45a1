package security

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRequestBlocked     EventType = "request_blocked"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventValidationFailed   EventType = "validation_failed"
	EventMissingConfig      EventType = "missing_config"
	EventSendFailed         EventType = "email_send_failed"
	EventEmailSent          EventType = "email_sent"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp   time.Time              `json:"timestamp"`
	Service     string                 `json:"service"`
	Environment string                 `json:"env"`
	Level       string                 `json:"level"`
	Event       EventType              `json:"event"`
	IP          string                 `json:"ip,omitempty"`
	UserAgent   string                 `json:"user_agent,omitempty"`
	RequestID   string                 `json:"request_id,omitempty"`
	Endpoint    string                 `json:"endpoint,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger provides structured logging for security events.
// Construct one at startup and inject it; there is no package singleton.
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewSecurityLogger initializes the security logger with Zap
func NewSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"

	// Stdout for container environments
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		// Fallback to a basic logger if config fails
		logger, _ = zap.NewProduction()
	}

	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Log logs a security event
func (sl *SecurityLogger) Log(event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	level := zapcore.WarnLevel
	switch event.Event {
	case EventEmailSent:
		level = zapcore.InfoLevel
	case EventRateLimitTriggered, EventValidationFailed:
		level = zapcore.WarnLevel
	case EventRequestBlocked, EventMissingConfig, EventSendFailed:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.Endpoint != "" {
		fields = append(fields, zap.String("endpoint", event.Endpoint))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ip, userAgent, requestID, endpoint string) {
	sl.Log(SecurityEvent{
		Event:     EventRateLimitTriggered,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Endpoint:  endpoint,
	})
}

// LogRequestBlocked logs when a suspicious client is rejected
func (sl *SecurityLogger) LogRequestBlocked(ip, userAgent, requestID, reason string) {
	sl.Log(SecurityEvent{
		Event:     EventRequestBlocked,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"reason": reason},
	})
}

// Sync flushes buffered log entries on shutdown
func (sl *SecurityLogger) Sync() {
	_ = sl.zapLogger.Sync()
}
