package store

import (
	"context"

	"taskletix.app/intake/internal/model"
)

// SubmissionStore defines the contract for contact submission data access.
// Rows are only ever inserted and read; nothing here updates or deletes.
type SubmissionStore interface {
	// Create inserts the submission and fills in the store-assigned ID and CreatedAt.
	Create(ctx context.Context, sub *model.Submission) error
	// List returns submissions newest first.
	List(ctx context.Context, limit, offset int32) ([]model.Submission, error)
	// ListForExport returns at most maxRows submissions newest first, without country_code.
	ListForExport(ctx context.Context, maxRows int32) ([]model.Submission, error)
}

// AdminTokenStore holds the bearer tokens issued to the admin operator.
type AdminTokenStore interface {
	// Issue generates a fresh token and records it as valid.
	Issue(ctx context.Context) (string, error)
	// Check reports whether token was issued by this store.
	Check(ctx context.Context, token string) bool
}
