package cmd

import (
	"context"
	"fmt"
	"time"

	"retailops/internal/adapters/out/memory"
	"retailops/internal/adapters/out/postgres"
	redisadapter "retailops/internal/adapters/out/redis"
	"retailops/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const redisPingTimeout = 5 * time.Second

// openDatabase connects to postgres and applies the schema.
func openDatabase(cfg Config, logger zerolog.Logger) (*gorm.DB, error) {
	dsn := postgres.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode)
	db, err := postgres.Open(dsn, gormLevel(logger.GetLevel()))
	if err != nil {
		return nil, fmt.Errorf("connect to postgres at %s:%s: %w", cfg.DBHost, cfg.DBPort, err)
	}
	if err = postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	logger.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("postgres ready")
	return db, nil
}

// openStorage returns the unit of work factory for the configured driver and
// a func releasing its resources.
func openStorage(cfg Config, logger zerolog.Logger) (ports.UnitOfWorkFactory, func(), error) {
	if cfg.StorageDriver == StorageMemory {
		logger.Warn().Msg("using in-memory storage; data is lost on exit")
		return memory.NewUnitOfWorkFactory(memory.NewStore()), func() {}, nil
	}

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			if err = sqlDB.Close(); err != nil {
				logger.Error().Err(err).Msg("close postgres")
			}
		}
	}
	return postgres.NewGormUnitOfWorkFactory(db), closeDB, nil
}

// openCache returns a nil cache when redis is disabled.
func openCache(ctx context.Context, cfg Config, logger zerolog.Logger) (ports.StockCache, func(), error) {
	if !cfg.RedisEnabled {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	logger.Info().Str("addr", cfg.RedisAddr).Dur("ttl", cfg.StockCacheTTL).Msg("stock cache enabled")
	closeClient := func() {
		if err := client.Close(); err != nil {
			logger.Error().Err(err).Msg("close redis")
		}
	}
	return redisadapter.NewStockCache(client, cfg.StockCacheTTL), closeClient, nil
}
