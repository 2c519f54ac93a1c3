package service

import (
	"context"
	"fmt"
	"log/slog"

	"taskletix.app/intake/common/logger"
	"taskletix.app/intake/internal/model"
	"taskletix.app/intake/internal/report"
	"taskletix.app/intake/internal/store"
)

// SubmissionService backs the admin listing and export endpoints.
type SubmissionService interface {
	List(ctx context.Context, limit, offset int32) ([]model.Submission, error)
	// ExportPDF renders the newest ExportMaxRows submissions.
	ExportPDF(ctx context.Context) ([]byte, error)
}

type submissionService struct {
	submissions store.SubmissionStore
	renderer    report.Renderer
}

func NewSubmissionService(submissions store.SubmissionStore, renderer report.Renderer) SubmissionService {
	return &submissionService{
		submissions: submissions,
		renderer:    renderer,
	}
}

func (s *submissionService) List(ctx context.Context, limit, offset int32) ([]model.Submission, error) {
	sc := logger.StartSpan(ctx, "service.submission.list")
	defer sc.End()
	ctx = sc.Context()

	subs, err := s.submissions.List(ctx, limit, offset)
	if err != nil {
		sc.RecordError(err)
		return nil, wrapStorage("listing submissions", err)
	}

	slog.DebugContext(ctx, "listed submissions", "limit", limit, "offset", offset, "count", len(subs))
	return subs, nil
}

func (s *submissionService) ExportPDF(ctx context.Context) ([]byte, error) {
	sc := logger.StartSpan(ctx, "service.submission.export_pdf")
	defer sc.End()
	ctx = sc.Context()

	rows, err := s.submissions.ListForExport(ctx, ExportMaxRows)
	if err != nil {
		sc.RecordError(err)
		return nil, wrapStorage("loading submissions for export", err)
	}

	doc, err := s.renderer.Render(rows)
	if err != nil {
		sc.RecordError(err)
		return nil, fmt.Errorf("%w: %w", ErrReportRender, err)
	}

	slog.InfoContext(ctx, "exported submissions report", "rows", len(rows), "bytes", len(doc))
	return doc, nil
}
