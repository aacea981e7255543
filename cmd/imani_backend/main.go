package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	portrepo "github.com/imani-cms/imani_backend/internal/core/ports/repositories"
	"github.com/imani-cms/imani_backend/internal/core/services"
	"github.com/imani-cms/imani_backend/internal/handlers"
	"github.com/imani-cms/imani_backend/internal/middleware"
	"github.com/imani-cms/imani_backend/internal/platform/ai"
	"github.com/imani-cms/imani_backend/internal/platform/cache"
	"github.com/imani-cms/imani_backend/internal/platform/config"
	"github.com/imani-cms/imani_backend/internal/platform/scripture"
	"github.com/imani-cms/imani_backend/internal/repositories/database/pgsql"
	"github.com/imani-cms/imani_backend/internal/repositories/memory"
	"github.com/imani-cms/imani_backend/internal/seed"
	"github.com/imani-cms/imani_backend/internal/utils"
	"github.com/imani-cms/imani_backend/pkg/database"
)

// @title Imani CMS API
// @version 1.0
// @description Church management backend: members, finance, events, communications and platform billing.

// @host localhost:8080
// @BasePath /

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
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	var chapterCache cache.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisCache.Close()
		chapterCache = redisCache
		logger.Info("Scripture chapter cache enabled")
	}

	aiClient := ai.NewClient(cfg.AIAPIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	scriptureClient := scripture.NewClient(cfg.ScriptureAPIBaseURL, chapterCache)

	container := services.NewServiceContainer(cfg, repos, aiClient, scriptureClient)

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, cfg.PostHogEndpoint, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-API-Key", "X-Tenant-ID")

	rateStore := limitermem.NewStore()
	rateLimiter := limiter.New(rateStore, limiter.Rate{
		Period: time.Minute,
		Limit:  int64(cfg.RateLimitPerMinute),
	})

	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig),
		middleware.RateLimit(rateLimiter),
		middleware.PosthogMiddleware(posthogClient),
		middleware.APIKeyAuthMiddleware(container.APIKey, container.User),
	)

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("db_driver", cfg.DBDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories assembles the repository provider for the configured
// storage driver. The returned cleanup closes any underlying pool.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*portrepo.RepositoryProvider, func(), error) {
	switch cfg.DBDriver {
	case "memory", "":
		stores := memory.NewStores()
		repos := memory.NewRepositoryProvider(stores)
		if cfg.SeedDemo {
			if err := seed.Run(ctx, repos, logger); err != nil {
				return nil, nil, fmt.Errorf("seeding demo data: %w", err)
			}
		}
		return repos, func() {}, nil

	case "postgres":
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			return nil, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing database pool: %w", err)
		}
		logger.Info("Database connection pool established")

		// Ancillary records (sermons, tickets, communications, audit,
		// budgets, API keys) stay in memory until they get their own tables.
		stores := memory.NewStores()
		repos := pgsql.NewRepositoryProvider(dbPool, stores)
		return repos, func() { database.ClosePgxPool(dbPool) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// runMigrations applies all pending up migrations over a short-lived
// database/sql connection.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("pinging database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("creating postgres migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("applying migrations: %w", err)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied successfully")
	}
	return nil
}
