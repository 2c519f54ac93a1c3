package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"taskletix.app/intake/common/id"
	"taskletix.app/intake/common/logger"
	"taskletix.app/intake/common/otel"
	"taskletix.app/intake/core/config"
	"taskletix.app/intake/core/db"
	"taskletix.app/intake/internal/http/middleware"
	httprouter "taskletix.app/intake/internal/http/router"
	"taskletix.app/intake/internal/queue"
	"taskletix.app/intake/internal/report"
	"taskletix.app/intake/internal/service"
	"taskletix.app/intake/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "intake api starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if cfg.IsProduction() && cfg.UsesDefaultAdminPassword() {
		slog.WarnContext(ctx, "ADMIN_PASSWORD is the development default; override it in production")
	}

	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected", "max_conns", cfg.DB.MaxConns)

	producer, err := newProducer(ctx, cfg.Notifications)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	// Admin tokens live in memory only; every restart starts with an empty set.
	stores := store.NewStores(database.Queries())

	services := service.NewServices(service.ServicesConfig{
		Stores:        stores,
		Producer:      producer,
		Renderer:      report.NewPDFRenderer(),
		AdminPassword: cfg.AdminPassword,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func newProducer(ctx context.Context, cfg config.NotificationConfig) (queue.Producer, error) {
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "submission notifications disabled (no REDIS_URL)")
		return queue.NewNoopProducer(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Stream)

	return queue.NewRedisProducer(client, cfg.Stream, slog.Default()), nil
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → RequestID tags context → Recovery catches panics → Logger logs with both
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, httprouter.RouterConfig{
		CORS: cfg.CORS,
	})

	return router
}

const banner = `
 _____         _    _      _   _        _       _        _
|_   _|_ _ ___| | _| | ___| |_(_)_  __ (_)_ __ | |_ __ _| | _____
  | |/ _' / __| |/ / |/ _ \ __| \ \/ / | | '_ \| __/ _' | |/ / _ \
  | | (_| \__ \   <| |  __/ |_| |>  <  | | | | | || (_| |   <  __/
  |_|\__,_|___/_|\_\_|\___|\__|_/_/\_\ |_|_| |_|\__\__,_|_|\_\___|
`
