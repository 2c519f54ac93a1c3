package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"taskletix.app/intake/common/logger"
	"taskletix.app/intake/internal/queue"
)

type ReclaimerConfig struct {
	Consumer  string        // name the claimed entries are moved to
	MinIdle   time.Duration // how long an entry must sit unacked before it is taken over
	Interval  time.Duration
	BatchSize int64
}

// StaleSource hands over submissions another notifier read but never acked.
type StaleSource interface {
	ClaimStale(ctx context.Context, claimer string, minIdle time.Duration, count int64) ([]queue.Message, error)
}

// Reclaimer gives submissions stranded by a crashed notifier another
// delivery attempt through the worker's own handler.
type Reclaimer struct {
	source  StaleSource
	cfg     ReclaimerConfig
	deliver queue.MessageProcessor

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewReclaimer(source StaleSource, cfg ReclaimerConfig, deliver queue.MessageProcessor) *Reclaimer {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	return &Reclaimer{
		source:    source,
		cfg:       cfg,
		deliver:   deliver,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Run sweeps once per Interval until Stop is called or ctx is done.
func (r *Reclaimer) Run(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "intake.worker.reclaimer"})
	defer close(r.stoppedCh)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "reclaimer started", "interval", r.cfg.Interval, "min_idle", r.cfg.MinIdle)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			slog.InfoContext(ctx, "reclaimer stopping")
			return
		case <-ticker.C:
			if _, err := r.Sweep(ctx); err != nil {
				slog.ErrorContext(ctx, "reclaim sweep failed", "error", err)
			}
		}
	}
}

func (r *Reclaimer) Stop() {
	close(r.stopCh)
	<-r.stoppedCh
}

// Sweep claims one batch of stale submissions and delivers each of them.
// It returns how many were claimed.
func (r *Reclaimer) Sweep(ctx context.Context) (int, error) {
	stale, err := r.source.ClaimStale(ctx, r.cfg.Consumer, r.cfg.MinIdle, r.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("claiming stale submissions: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	slog.InfoContext(ctx, "claimed stale submissions", "count", len(stale))

	for _, msg := range stale {
		msgCtx := logger.WithLogFields(ctx, logger.LogFields{
			MessageID:    logger.Ptr(msg.ID),
			SubmissionID: logger.Ptr(msg.SubmissionID),
		})
		if err := r.deliver(msgCtx, msg); err != nil {
			slog.ErrorContext(msgCtx, "redelivery failed", "error", err, "attempt", msg.Attempt)
		}
	}
	return len(stale), nil
}
