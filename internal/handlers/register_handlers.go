package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/SscSPs/products_accounts/cmd/docs"
	portssvc "github.com/SscSPs/products_accounts/internal/core/ports/services"
	"github.com/SscSPs/products_accounts/internal/dto"
	"github.com/SscSPs/products_accounts/internal/middleware"
	"github.com/SscSPs/products_accounts/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var registerValidationsOnce sync.Once

// registerBindingValidations installs the dto rules on gin's validator engine.
func registerBindingValidations() {
	registerValidationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator, custom rules not registered")
			return
		}
		if err := dto.RegisterValidations(v); err != nil {
			slog.Error("Failed to register custom validations", slog.String("error", err.Error()))
		}
	})
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterInterestRateRoutes(v1, service.InterestRate)
	RegisterProductAccountRoutes(v1, service.ProductAccount)
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
