package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"taskletix.app/intake/core/db/sqlc"
	"taskletix.app/intake/internal/model"
)

type submissionStore struct {
	queries *sqlc.Queries
}

func newSubmissionStore(queries *sqlc.Queries) SubmissionStore {
	return &submissionStore{queries: queries}
}

func (s *submissionStore) Create(ctx context.Context, sub *model.Submission) error {
	row, err := s.queries.CreateContactSubmission(ctx, sqlc.CreateContactSubmissionParams{
		Name:           sub.Name,
		Email:          sub.Email,
		Phone:          sub.Phone,
		CountryCode:    sub.CountryCode,
		Company:        sub.Company,
		ProjectType:    sub.ProjectType,
		BudgetRange:    sub.BudgetRange,
		Timeline:       sub.Timeline,
		ProjectDetails: sub.ProjectDetails,
	})
	if err != nil {
		return fmt.Errorf("inserting contact submission: %w", err)
	}
	*sub = *toSubmissionModel(row)
	return nil
}

func (s *submissionStore) List(ctx context.Context, limit, offset int32) ([]model.Submission, error) {
	rows, err := s.queries.ListContactSubmissions(ctx, sqlc.ListContactSubmissionsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("listing contact submissions: %w", err)
	}
	return toSubmissionModels(rows), nil
}

func (s *submissionStore) ListForExport(ctx context.Context, maxRows int32) ([]model.Submission, error) {
	rows, err := s.queries.ListContactSubmissionsForExport(ctx, maxRows)
	if err != nil {
		return nil, fmt.Errorf("listing contact submissions for export: %w", err)
	}
	result := make([]model.Submission, len(rows))
	for i, row := range rows {
		result[i] = model.Submission{
			ID:             row.ID,
			Name:           row.Name,
			Email:          row.Email,
			Phone:          row.Phone,
			Company:        row.Company,
			ProjectType:    row.ProjectType,
			BudgetRange:    row.BudgetRange,
			Timeline:       row.Timeline,
			ProjectDetails: row.ProjectDetails,
			CreatedAt:      timeOf(row.CreatedAt),
		}
	}
	return result, nil
}

func toSubmissionModel(row sqlc.ContactSubmission) *model.Submission {
	return &model.Submission{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		Phone:          row.Phone,
		CountryCode:    row.CountryCode,
		Company:        row.Company,
		ProjectType:    row.ProjectType,
		BudgetRange:    row.BudgetRange,
		Timeline:       row.Timeline,
		ProjectDetails: row.ProjectDetails,
		CreatedAt:      timeOf(row.CreatedAt),
	}
}

func toSubmissionModels(rows []sqlc.ContactSubmission) []model.Submission {
	result := make([]model.Submission, len(rows))
	for i, row := range rows {
		result[i] = *toSubmissionModel(row)
	}
	return result
}

func timeOf(ts pgtype.Timestamptz) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	return ts.Time
}
