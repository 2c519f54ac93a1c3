package model

import "time"

// Submission is one contact-form record. ID and CreatedAt are assigned by the
// store; everything else arrives from the public form already trimmed.
type Submission struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	CountryCode    string    `json:"country_code"`
	Company        string    `json:"company"`
	ProjectType    string    `json:"project_type"`
	BudgetRange    string    `json:"budget_range"`
	Timeline       string    `json:"timeline"`
	ProjectDetails string    `json:"project_details"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsPersisted reports whether the store has assigned an id.
func (s *Submission) IsPersisted() bool {
	return s.ID != 0
}
