package v1

import (
	"net/http"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/ratelimit"
	"go-portfolio-backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC   domain.ContactUsecase
	PortfolioUC domain.PortfolioUsecase
	Limiter     ratelimit.Store
	Classifier  *apperror.Classifier
	SecLogger   *security.SecurityLogger
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Config.Environment)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestGuard(deps.Classifier, deps.SecLogger))
	r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:         deps.Config.RateLimitGlobalThreshold,
		WindowSeconds: deps.Config.RateLimitWindowSeconds,
		Store:         deps.Limiter,
	}, deps.Classifier, deps.SecLogger))
	r.Use(middleware.ErrorHandler(deps.Classifier))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	// Public routes
	NewContactHandler(v1, deps.ContactUC, deps.Limiter, deps.Config.RateLimitContactThreshold, deps.SecLogger)
	NewPortfolioHandler(v1, deps.PortfolioUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Diagnostics, opt-in only
	if deps.Config.DebugEndpoints {
		NewOpsHandler(v1.Group("/ops"), deps.Classifier, deps.Limiter)
	}

	return r
}
