package service

import (
	"context"
	"log/slog"

	"taskletix.app/intake/common/logger"
	"taskletix.app/intake/internal/model"
	"taskletix.app/intake/internal/queue"
	"taskletix.app/intake/internal/store"
)

type ContactService interface {
	// Submit validates a raw contact payload and persists it.
	Submit(ctx context.Context, raw map[string]any) (*model.Submission, error)
}

type contactService struct {
	submissions store.SubmissionStore
	producer    queue.Producer
}

func NewContactService(submissions store.SubmissionStore, producer queue.Producer) ContactService {
	if producer == nil {
		producer = queue.NewNoopProducer()
	}
	return &contactService{
		submissions: submissions,
		producer:    producer,
	}
}

func (s *contactService) Submit(ctx context.Context, raw map[string]any) (*model.Submission, error) {
	sc := logger.StartSpan(ctx, "service.contact.submit")
	defer sc.End()
	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{Component: "intake.service.contact"})

	sub, err := ValidateSubmission(raw)
	if err != nil {
		slog.DebugContext(ctx, "contact submission rejected", "reason", err)
		return nil, err
	}

	if err := s.submissions.Create(ctx, sub); err != nil {
		sc.RecordError(err)
		return nil, wrapStorage("saving submission", err)
	}
	if !sub.IsPersisted() {
		return nil, wrapStorage("saving submission", errNoID)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{SubmissionID: logger.Ptr(sub.ID)})
	slog.InfoContext(ctx, "contact submission saved", "project_type", sub.ProjectType)

	msg := queue.SubmissionMessage{
		SubmissionID: sub.ID,
		Email:        sub.Email,
		ProjectType:  sub.ProjectType,
	}
	if traceID := sc.TraceID(); traceID != "" {
		msg.TraceID = &traceID
	}
	// The row is already committed; a notification failure must not fail the request.
	if err := s.producer.Enqueue(ctx, msg); err != nil {
		slog.WarnContext(ctx, "failed to enqueue submission notification", "error", err)
	}

	return sub, nil
}
