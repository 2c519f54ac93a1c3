package service

import (
	"regexp"
	"strings"

	"taskletix.app/intake/internal/model"
)

// Contact form field names as they appear in the JSON payload.
const (
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldCountryCode    = "country_code"
	FieldCompany        = "company"
	FieldProjectType    = "project_type"
	FieldBudgetRange    = "budget_range"
	FieldTimeline       = "timeline"
	FieldProjectDetails = "project_details"
)

// RequiredFields is the order missing fields are reported in.
var RequiredFields = []string{FieldName, FieldEmail, FieldProjectType, FieldProjectDetails}

// EmailPattern accepts gmail.com addresses only. The domain is case-sensitive.
const EmailPattern = `^[a-zA-Z0-9._%+-]+@gmail\.com$`

var gmailRegex = regexp.MustCompile(EmailPattern)

// ValidateSubmission normalises a raw contact payload into an unsaved
// Submission. Absent and non-string values count as empty; every value is
// trimmed. It has no side effects.
func ValidateSubmission(raw map[string]any) (*model.Submission, error) {
	sub := &model.Submission{
		Name:           stringField(raw, FieldName),
		Email:          stringField(raw, FieldEmail),
		Phone:          stringField(raw, FieldPhone),
		CountryCode:    stringField(raw, FieldCountryCode),
		Company:        stringField(raw, FieldCompany),
		ProjectType:    stringField(raw, FieldProjectType),
		BudgetRange:    stringField(raw, FieldBudgetRange),
		Timeline:       stringField(raw, FieldTimeline),
		ProjectDetails: stringField(raw, FieldProjectDetails),
	}

	values := map[string]string{
		FieldName:           sub.Name,
		FieldEmail:          sub.Email,
		FieldProjectType:    sub.ProjectType,
		FieldProjectDetails: sub.ProjectDetails,
	}

	var missing []string
	for _, name := range RequiredFields {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if !gmailRegex.MatchString(sub.Email) {
		return nil, ErrInvalidEmail
	}

	return sub, nil
}

func stringField(raw map[string]any, name string) string {
	s, ok := raw[name].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
