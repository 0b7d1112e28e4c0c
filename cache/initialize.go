package cache

import (
	"os"

	"github.com/umakantv/go-utils/cache"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"wardrobe-service/config"
)

// InitializeCache connects the response and session cache
func InitializeCache(cfg config.App) cache.Cache {
	cache, err := cache.New(cache.Config{
		Type:          cfg.CacheType,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
	})
	if err != nil {
		logger.Error("Failed to initialize cache:", zap.Error(err), zap.String("type", cfg.CacheType))
		os.Exit(1)
	}

	logger.Info("Cache initialized", zap.String("type", cfg.CacheType))
	return cache
}
