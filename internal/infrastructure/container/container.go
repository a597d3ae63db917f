// Package container provides dependency injection using Uber FX.
package container

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wellfed/extraction/internal/application/extraction"
	"github.com/wellfed/extraction/internal/application/nutrition"
	"github.com/wellfed/extraction/internal/infrastructure/config"
	"github.com/wellfed/extraction/internal/infrastructure/http/handlers"
	"github.com/wellfed/extraction/internal/infrastructure/http/server"
	"github.com/wellfed/extraction/internal/infrastructure/monitoring"
	gormRepo "github.com/wellfed/extraction/internal/infrastructure/persistence/gorm"
	"github.com/wellfed/extraction/internal/infrastructure/persistence/memory"
	redisRepo "github.com/wellfed/extraction/internal/infrastructure/persistence/redis"
	"github.com/wellfed/extraction/internal/ports/inbound"
	"github.com/wellfed/extraction/internal/ports/outbound"
	"github.com/wellfed/extraction/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	MonitoringModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM database connection
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		return gormRepo.NewDatabase(cfg.Database, cfg.GetDSN(), log)
	},
)

// CacheModule provides caching. Redis when enabled, in-memory otherwise.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if cfg.Redis.Enabled {
			client, err := redisRepo.NewClient(cfg.Redis, log)
			if err != nil {
				return nil, err
			}
			return redisRepo.NewCacheRepository(client, log), nil
		}
		log.Info("redis disabled, using in-memory cache")
		return memory.NewCacheRepository(), nil
	},
)

// MonitoringModule provides the Prometheus metrics collector
var MonitoringModule = fx.Provide(
	monitoring.NewMetricsCollector,
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewExtractionRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	nutrition.NewService,

	fx.Annotate(
		func(
			cfg *config.Config,
			log *zap.Logger,
			cache outbound.CacheRepository,
			repo outbound.ExtractionRepository,
			metrics *monitoring.MetricsCollector,
		) *extraction.Service {
			return extraction.NewService(extraction.Config{
				MaxInputBytes: cfg.Extraction.MaxInputBytes,
				CacheTTL:      cfg.Extraction.CacheTTL,
				TraceEnabled:  cfg.Extraction.TraceEnabled,
			}, log, cache, repo, metrics)
		},
		fx.As(new(inbound.ExtractionService)),
	),
)

// HTTPModule provides the HTTP server and handlers
var HTTPModule = fx.Provide(
	handlers.NewExtractionHandlers,
	server.NewServer,
)

// LifecycleModule registers application lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks starts the HTTP server on application start and
// tears everything down on stop.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment))

			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("failed to shutdown http server", zap.Error(err))
			}

			if sqlDB, err := db.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
