package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tair/stock-tracker/docs"
	"github.com/tair/stock-tracker/internal/config"
	"github.com/tair/stock-tracker/internal/stock"
	stockhttp "github.com/tair/stock-tracker/internal/stock/delivery/http"
	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/internal/stock/repository"
	"github.com/tair/stock-tracker/kafka"
	"github.com/tair/stock-tracker/pkg/database"
	"github.com/tair/stock-tracker/pkg/logger"
	"github.com/tair/stock-tracker/pkg/tracing"
)

const serviceName = "stock-service"

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logger.Init(serviceName, true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(serviceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Logger.Info().
		Str("app", cfg.AppName).
		Str("version", cfg.Version).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("Starting stock service")

	// Initialize tracer
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(serviceName, cfg.Version, cfg.JaegerEndpoint)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracing.Shutdown(ctx, tp); err != nil {
					logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
				}
			}()
		}
	}

	// Connect to database
	db, err := database.NewGormConnection(cfg.Database())
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := repository.AutoMigrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	publisher := newPublisher(cfg)
	if closer, ok := publisher.(interface{ Close() error }); ok {
		defer closer.Close()
	}

	// Initialize handler with Wire DI
	stockHandler, err := stock.InitializeHTTPHandler(db, publisher, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	server := newHTTPServer(cfg, stockHandler, sqlDB)

	go func() {
		logger.Logger.Info().
			Str("port", cfg.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
}

// newPublisher connects to Kafka when brokers are configured. The service keeps running
// without events when the brokers are unreachable.
func newPublisher(cfg *config.Config) domain.EventPublisher {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		logger.Logger.Info().Msg("Kafka brokers not configured, events disabled")
		return domain.NoopPublisher{}
	}

	publisher, err := kafka.NewPublisher(brokers, cfg.KafkaTopic)
	if err != nil {
		logger.Logger.Error().Err(err).Strs("brokers", brokers).Msg("Failed to create Kafka publisher, events disabled")
		return domain.NoopPublisher{}
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("topic", cfg.KafkaTopic).
		Msg("Kafka publisher initialized")
	return publisher
}

func newHTTPServer(cfg *config.Config, stockHandler *stockhttp.StockHandler, db *sql.DB) *http.Server {
	// Setup router
	router := mux.NewRouter()

	middlewareConfig := stockhttp.DefaultMiddlewareConfig(cfg.AllowedOrigins(), cfg.RequestTimeout)

	// Register all middlewares using middleware registration system
	stockhttp.RegisterMiddlewares(router, middlewareConfig)

	// Register routes
	stockHandler.RegisterRoutes(router)

	// Health check endpoint
	stockHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	stockhttp.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           stockhttp.SetupCORS(middlewareConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
