package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"taskletix.app/intake/common/logger"
	"taskletix.app/intake/common/otel"
	"taskletix.app/intake/core/config"
	"taskletix.app/intake/internal/queue"
	"taskletix.app/intake/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)

	telemetry, err := otel.Setup(ctx, cfg.OTel, cfg.Env)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	ncfg := cfg.Notifications
	if !ncfg.Enabled() {
		slog.ErrorContext(ctx, "REDIS_URL is required to run the notification worker")
		os.Exit(1)
	}

	slog.InfoContext(ctx, "notification worker starting",
		"env", cfg.Env,
		"consumer_group", ncfg.Group,
		"consumer_name", ncfg.Consumer)

	redisOpts, err := redis.ParseURL(ncfg.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", ncfg.Stream)

	consumer, err := queue.NewRedisConsumer(ctx, redisClient, queue.ConsumerConfig{
		Stream:       ncfg.Stream,
		Group:        ncfg.Group,
		Consumer:     ncfg.Consumer,
		DLQStream:    ncfg.DLQStream,
		BatchSize:    10,
		Block:        5 * time.Second,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	var notifier worker.Notifier = worker.LogNotifier{}
	if ncfg.WebhookURL != "" {
		notifier = worker.NewWebhookNotifier(ncfg.WebhookURL, 10*time.Second)
		slog.InfoContext(ctx, "webhook notifications enabled")
	}

	w := worker.New(consumer, notifier, worker.Config{
		MaxAttempts: ncfg.MaxAttempts,
	})

	reclaimer := worker.NewReclaimer(consumer, worker.ReclaimerConfig{
		Consumer:  ncfg.Consumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  time.Minute,
		BatchSize: 10,
	}, w.HandleMessage)

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Reclaimer first; it is idle between ticks.
	reclaimer.Stop()
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
 _____         _    _      _   _                 _   _  __
|_   _|_ _ ___| | _| | ___| |_(_)_  __  _ __   ___ | |_(_)/ _|_   _
  | |/ _' / __| |/ / |/ _ \ __| \ \/ / | '_ \ / _ \| __| | |_| | | |
  | | (_| \__ \   <| |  __/ |_| |>  <  | | | | (_) | |_| |  _| |_| |
  |_|\__,_|___/_|\_\_|\___|\__|_/_/\_\ |_| |_|\___/ \__|_|_|  \__, |
                                                              |___/
`
