package main

import (
	"context"
	"log/slog"
	"os"

	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
	"github.com/SscSPs/products_accounts/internal/core/services"
	"github.com/SscSPs/products_accounts/internal/events"
	"github.com/SscSPs/products_accounts/internal/handlers"
	"github.com/SscSPs/products_accounts/internal/middleware"
	"github.com/SscSPs/products_accounts/internal/platform/config"
	"github.com/SscSPs/products_accounts/internal/repositories/cache"
	"github.com/SscSPs/products_accounts/internal/repositories/database/pgsql"
	"github.com/SscSPs/products_accounts/internal/repositories/memory"
	"github.com/SscSPs/products_accounts/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Products Accounts API
// @version 1.0
// @description Product account definitions and interest rates.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize repositories", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	var serviceOptions []services.ServiceOption
	if cfg.EventsEnabled() {
		redisClient, err := database.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()

		serviceOptions = append(serviceOptions, services.WithEventPublisher(events.NewPublisher(redisClient, cfg.EventStreamLen)))
		logger.Info("Redis event streams enabled", slog.String("addr", cfg.RedisAddr))

		if cfg.CacheEnabled() {
			repos = cache.WrapRepositoryProvider(repos, redisClient, cfg.CacheTTL)
			logger.Info("Redis read-through cache enabled", slog.Duration("ttl", cfg.CacheTTL))
		}
	}

	serviceContainer := services.NewServiceContainer(repos, serviceOptions...)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	r.Use(
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.Store))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories returns the repositories for cfg.Store and a cleanup func.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.Store == config.StoreMemory {
		logger.Warn("Using in-memory store, data is lost on restart")
		return memory.NewRepositoryProvider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}
