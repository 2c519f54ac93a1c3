package dto

import (
	"time"

	"taskletix.app/intake/internal/model"
)

// ContactRequest documents the public contact payload. Handlers decode the
// body into a generic map so that absent and non-string values can be
// normalised by the validator; this type drives the published JSON Schema.
type ContactRequest struct {
	Name           string `json:"name" jsonschema:"minLength=1,description=Full name of the requester"`
	Email          string `json:"email" jsonschema:"minLength=1,pattern=^[a-zA-Z0-9._%+-]+@gmail\\.com$,description=Gmail address"`
	Phone          string `json:"phone,omitempty"`
	CountryCode    string `json:"country_code,omitempty" jsonschema:"description=Dialling prefix such as +1"`
	Company        string `json:"company,omitempty"`
	ProjectType    string `json:"project_type" jsonschema:"minLength=1"`
	BudgetRange    string `json:"budget_range,omitempty"`
	Timeline       string `json:"timeline,omitempty"`
	ProjectDetails string `json:"project_details" jsonschema:"minLength=1"`
}

type ContactResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type SubmissionResponse struct {
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

type ListSubmissionsResponse struct {
	OK          bool                 `json:"ok"`
	Submissions []SubmissionResponse `json:"submissions"`
}

func ToSubmissionResponse(s model.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:             s.ID,
		Name:           s.Name,
		Email:          s.Email,
		Phone:          s.Phone,
		CountryCode:    s.CountryCode,
		Company:        s.Company,
		ProjectType:    s.ProjectType,
		BudgetRange:    s.BudgetRange,
		Timeline:       s.Timeline,
		ProjectDetails: s.ProjectDetails,
		CreatedAt:      s.CreatedAt,
	}
}

func ToSubmissionResponses(subs []model.Submission) []SubmissionResponse {
	result := make([]SubmissionResponse, len(subs))
	for i, s := range subs {
		result[i] = ToSubmissionResponse(s)
	}
	return result
}
