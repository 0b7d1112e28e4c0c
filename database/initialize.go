package database

import (
	"context"
	"os"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wardrobe-service/config"
	"wardrobe-service/store"
)

// InitializeDatabase opens the wardrobe store and migrates it to the latest
// schema. metrics may be nil.
func InitializeDatabase(ctx context.Context, cfg config.App, metrics *store.Metrics) *store.Store {
	s, err := store.Open(ctx, store.Config{
		Path:       cfg.DBPath,
		BcryptCost: cfg.BcryptCost,
		Logger:     NewLogger(),
		Metrics:    metrics,
	})
	if err != nil {
		logger.Error("Error while opening database", zap.Error(err), zap.String("path", cfg.DBPath))
		os.Exit(1)
	}

	logger.Info("Database initialized successfully", zap.String("path", cfg.DBPath))
	return s
}

// NewLogger builds the store logger with the same keys as the request log
func NewLogger() *zap.Logger {
	zc := zap.NewProductionConfig()
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.CallerKey = "file"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
