package server

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/umakantv/go-utils/httpserver"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	cachepackage "wardrobe-service/cache"
	"wardrobe-service/config"
	"wardrobe-service/database"
	"wardrobe-service/handlers"
	"wardrobe-service/store"
)

// bearerAuth accepts requests carrying the configured API token
func bearerAuth(token string) func(r *http.Request) (bool, httpserver.RequestAuth) {
	return func(r *http.Request) (bool, httpserver.RequestAuth) {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			return false, httpserver.RequestAuth{}
		}

		if strings.TrimPrefix(auth, "Bearer ") != token {
			return false, httpserver.RequestAuth{}
		}

		return true, httpserver.RequestAuth{
			Type:   "bearer",
			Client: "wardrobe-app",
			Claims: map[string]interface{}{"service": "wardrobe-service"},
		}
	}
}

// InitLogger sets up the request logger
func InitLogger() {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})
}

func StartServer(cfg config.App) {
	InitLogger()
	logger.Info("Starting Wardrobe Service...")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := store.NewMetrics(registry)
	if err != nil {
		logger.Error("Failed to register metrics", zap.Error(err))
		os.Exit(1)
	}

	// Initialize database
	wardrobe := database.InitializeDatabase(context.Background(), cfg, metrics)
	defer wardrobe.Close()

	// Initialize cache
	cache := cachepackage.InitializeCache(cfg)
	defer cache.Close()
	responses := cachepackage.NewResponses(cache)

	server := httpserver.New(cfg.HTTPPort, bearerAuth(cfg.APIToken))

	server.Register(httpserver.Route{
		Name:     "HealthCheck",
		Method:   "GET",
		Path:     "/health",
		AuthType: "none",
	}, httpserver.HandlerFunc(func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := wardrobe.HealthCheck(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "service": "wardrobe-service"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "wardrobe-service"}`))
	}))

	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	server.Register(httpserver.Route{
		Name:     "Metrics",
		Method:   "GET",
		Path:     "/metrics",
		AuthType: "none",
	}, httpserver.HandlerFunc(func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		metricsHandler.ServeHTTP(w, r)
	}))

	schemaVersion := httpserver.HandlerFunc(func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		version, err := wardrobe.SchemaVersion(ctx)
		if err != nil {
			logger.Error("Failed to read schema version", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "schema version unavailable"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"version": ` + strconv.FormatUint(uint64(version), 10) + `}`))
	})
	server.Register(httpserver.Route{
		Name:     "SchemaVersion",
		Method:   "GET",
		Path:     "/schema/version",
		AuthType: "bearer",
	}, schemaVersion)

	for _, route := range routes(
		handlers.NewUserHandler(wardrobe),
		handlers.NewDesignerHandler(wardrobe, responses),
		handlers.NewDesignHandler(wardrobe, responses, cfg.ListCacheTTL),
		handlers.NewClothingHandler(wardrobe, responses, cfg.ListCacheTTL),
		handlers.NewOutfitHandler(wardrobe, responses, cfg.ListCacheTTL),
		handlers.NewFavoriteHandler(wardrobe),
		handlers.NewAuthHandler(wardrobe, responses, cfg.SessionTTL),
	) {
		server.Register(route.Route, route.handler)
	}

	logger.Info("Wardrobe Service started", zap.String("port", cfg.HTTPPort))
	logger.Info("Health check: GET /health")

	if err := server.Start(); err != nil {
		logger.Error("Server failed to start", zap.Error(err))
		os.Exit(1)
	}
}
