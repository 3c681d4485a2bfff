package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/pear-vc/demoday-engine/pkg/auth"
	"github.com/pear-vc/demoday-engine/pkg/config"
	"github.com/pear-vc/demoday-engine/pkg/database"
	"github.com/pear-vc/demoday-engine/pkg/handlers"
	"github.com/pear-vc/demoday-engine/pkg/llm"
	"github.com/pear-vc/demoday-engine/pkg/logging"
	"github.com/pear-vc/demoday-engine/pkg/middleware"
	"github.com/pear-vc/demoday-engine/pkg/repositories"
	"github.com/pear-vc/demoday-engine/pkg/seed"
	"github.com/pear-vc/demoday-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("base_url", cfg.BaseURL),
		zap.String("store", cfg.Store),
		zap.String("ai_provider", cfg.AI.Provider))

	ctx := context.Background()

	companyRepo, connectionRepo, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.String("error", logging.SanitizeError(err)))
	}
	defer cleanup()

	// Services
	companyService := services.NewCompanyService(companyRepo, logger)
	connectionService := services.NewConnectionService(connectionRepo, logger)

	var dataset *seed.Dataset
	if cfg.SeedFile != "" {
		dataset, err = seed.LoadFile(cfg.SeedFile)
		if err != nil {
			logger.Fatal("Failed to load seed file",
				zap.String("path", cfg.SeedFile),
				zap.String("error", logging.SanitizeError(err)))
		}
		logger.Info("Loaded seed dataset",
			zap.String("path", cfg.SeedFile),
			zap.Int("companies", len(dataset.Companies)),
			zap.Int("founders", len(dataset.Founders)))
	}
	adminService := services.NewAdminService(companyRepo, connectionRepo, connectionService, dataset, logger)

	toolCaller, err := llm.NewToolCaller(&cfg.AI, logger)
	if err != nil {
		logger.Fatal("Failed to create AI client", zap.Error(err))
	}
	if toolCaller == nil {
		logger.Info("AI search disabled, queries return the unfiltered directory")
	}
	searchService := services.NewSearchService(companyService, toolCaller, logger)

	// Auth
	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	tokens := auth.NewTokenService(cfg.Auth.TokenSecret, tokenTTL)
	sessions := auth.NewSessionStore(cfg.Auth.TokenSecret, int(tokenTTL.Seconds()))
	authMiddleware := auth.NewMiddleware(tokens, sessions, logger)

	mux := http.NewServeMux()

	// Register handlers
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewCompanyHandler(companyService, logger).RegisterRoutes(mux)
	handlers.NewConnectionHandler(connectionService, logger).RegisterRoutes(mux, authMiddleware)
	handlers.NewSearchHandler(searchService, logger).RegisterRoutes(mux)
	handlers.NewAuthHandler(tokens, sessions, authMiddleware, logger).RegisterRoutes(mux)
	handlers.NewAdminHandler(adminService, logger).RegisterRoutes(mux, authMiddleware)

	// Seed the demo dataset on boot so a fresh store serves companies
	// immediately. Stores that already hold data are left untouched.
	if _, err := adminService.Seed(ctx); err != nil {
		logger.Warn("Initial seed failed", zap.String("error", logging.SanitizeError(err)))
	}

	handler := middleware.RequestLogger(logger)(mux)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting demoday-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newLogger builds a production logger for deployed environments and a
// development logger everywhere else.
func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// buildRepositories constructs the storage backend selected by the config:
// in-memory stores for demos and tests, or PostgreSQL with migrations
// applied on startup. The returned cleanup closes any held connections.
func buildRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.CompanyRepository, repositories.ConnectionRepository, func(), error) {
	if cfg.Store == config.StoreMemory {
		logger.Info("Using in-memory store")
		return repositories.NewMemoryCompanyRepository(), repositories.NewMemoryConnectionRepository(), func() {}, nil
	}

	connStr := cfg.Database.ConnectionString()
	logger.Info("Connecting to PostgreSQL",
		zap.String("connection", logging.SanitizeConnectionString(connStr)))

	migrationDB, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, nil, nil, err
	}
	err = database.RunMigrations(migrationDB, cfg.Database.MigrationsPath, logger)
	if closeErr := migrationDB.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            connStr,
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	return repositories.NewCompanyRepository(db), repositories.NewConnectionRepository(db), db.Close, nil
}
