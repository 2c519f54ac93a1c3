package store

import (
	"taskletix.app/intake/core/db/sqlc"
)

type Stores struct {
	queries     *sqlc.Queries
	adminTokens AdminTokenStore
}

// NewStores builds the store set. The admin token store is created once here
// and shared for the life of the process.
func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{
		queries:     queries,
		adminTokens: NewMemoryAdminTokenStore(),
	}
}

func (s *Stores) Submissions() SubmissionStore {
	return newSubmissionStore(s.queries)
}

func (s *Stores) AdminTokens() AdminTokenStore {
	return s.adminTokens
}
