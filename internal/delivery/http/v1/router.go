package v1

import (
	"net/http"

	"skill-extraction-backend/config"
	"skill-extraction-backend/internal/delivery/http/middleware"
	"skill-extraction-backend/internal/delivery/http/response"
	"skill-extraction-backend/internal/domain"
	"skill-extraction-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	CvUC        domain.CvUsecase
	TokenIssuer *auth.TokenIssuer
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenIssuer))
	{
		NewAuthHandler(v1, protected, deps.AuthUC)
		NewCvHandler(protected, deps.CvUC)
	}

	return r
}
