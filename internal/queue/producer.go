package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// SubmissionMessage announces a newly saved contact submission to downstream
// consumers (CRM sync, sales notifications).
type SubmissionMessage struct {
	SubmissionID int64
	Email        string
	ProjectType  string
	TraceID      *string
}

type Producer interface {
	Enqueue(ctx context.Context, msg SubmissionMessage) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Enqueue(ctx context.Context, msg SubmissionMessage) error {
	fields := map[string]any{
		"submission_id": msg.SubmissionID,
		"email":         msg.Email,
		"project_type":  msg.ProjectType,
	}

	if msg.TraceID != nil && *msg.TraceID != "" {
		fields["trace_id"] = *msg.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue submission: %w", err)
	}

	p.logger.InfoContext(ctx, "enqueued submission notification", "submission_id", msg.SubmissionID, "stream", p.stream)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}

type noopProducer struct{}

// NewNoopProducer returns a Producer that drops every message. Used when no
// Redis URL is configured.
func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) Enqueue(context.Context, SubmissionMessage) error { return nil }

func (noopProducer) Close() error { return nil }
