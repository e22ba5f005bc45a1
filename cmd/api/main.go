package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/ratelimit"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/security"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form and site content backend for the portfolio website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(slog.LevelDebug)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)
	secLogger := security.NewSecurityLogger("portfolio-backend", cfg.Environment)
	defer secLogger.Sync()

	// 3. Setup Rate Limit Store (one shared instance for every call site)
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	var limiter ratelimit.Store = ratelimit.NewMemoryStore(window)
	if cfg.RedisURL != "" {
		client, err := redis.New(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer client.Close()
			limiter = ratelimit.NewRedisStore(client, window, logger.Log)
		}
	}

	// 4. Setup Error Classifier
	classifier := apperror.NewClassifier(logger.Log)

	// 5. Setup Email Service
	var mailer email.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = email.NewResendMailer(cfg.ResendAPIKey)
	}
	emailService := email.NewService(mailer, cfg.FromEmail, cfg.ContactEmailTo,
		email.WithSendTimeout(time.Duration(cfg.SendTimeoutSeconds)*time.Second))
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	contactUC := usecase.NewContactUsecase(emailService, validate, secLogger)
	portfolioUC := usecase.NewPortfolioUsecase()

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		PortfolioUC: portfolioUC,
		Limiter:     limiter,
		Classifier:  classifier,
		SecLogger:   secLogger,
		Config:      cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
