package worker

import (
	"context"

	"taskletix.app/intake/internal/queue"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// Notifier tells the sales team about a new submission.
type Notifier interface {
	Notify(ctx context.Context, msg queue.Message) error
}
