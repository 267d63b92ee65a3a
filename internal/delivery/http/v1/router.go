package v1

import (
	"net/http"

	"go-contact-relay/config"
	"go-contact-relay/internal/delivery/http/middleware"
	"go-contact-relay/internal/delivery/http/response"
	"go-contact-relay/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	if deps.Config.CORSAllowAnyOrigin {
		r.Use(middleware.CORSMiddleware()) // CORS must be first!
	}
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK)
	})

	// Public routes
	NewContactHandler(r.Group("/"), deps.ContactUC, deps.Config.RedirectURL)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
