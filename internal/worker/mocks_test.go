package worker_test

import (
	"context"
	"sync"

	"taskletix.app/intake/internal/queue"
)

type mockConsumer struct {
	mu        sync.Mutex
	readFn    func(ctx context.Context) ([]queue.Message, error)
	ackErr    error
	acked     []string
	requeued  []string
	deadLtrs  []string
	lastError string
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	if m.readFn != nil {
		return m.readFn(ctx)
	}
	return nil, nil
}

func (m *mockConsumer) Ack(_ context.Context, msg queue.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acked = append(m.acked, msg.ID)
	return m.ackErr
}

func (m *mockConsumer) Requeue(_ context.Context, msg queue.Message, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requeued = append(m.requeued, msg.ID)
	m.lastError = errMsg
	return nil
}

func (m *mockConsumer) SendDLQ(_ context.Context, msg queue.Message, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deadLtrs = append(m.deadLtrs, msg.ID)
	m.lastError = errMsg
	return nil
}

func (m *mockConsumer) ackedIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.acked...)
}

type mockNotifier struct {
	mu       sync.Mutex
	notifyFn func(ctx context.Context, msg queue.Message) error
	seen     []int64
}

func (m *mockNotifier) Notify(ctx context.Context, msg queue.Message) error {
	m.mu.Lock()
	m.seen = append(m.seen, msg.SubmissionID)
	m.mu.Unlock()
	if m.notifyFn != nil {
		return m.notifyFn(ctx, msg)
	}
	return nil
}
