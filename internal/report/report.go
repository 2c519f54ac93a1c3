// Package report turns exported submissions into a downloadable document.
package report

import (
	"strconv"
	"time"
	"unicode/utf8"

	"taskletix.app/intake/internal/model"
)

const (
	Title        = "Taskletix - Contact Submissions Report"
	Filename     = "taskletix_submissions.pdf"
	ContentType  = "application/pdf"
	TimestampFmt = "2006-01-02 15:04"
	ellipsis     = "..."
	noTruncation = 0
)

// Renderer produces a binary document from a row set. The same rows must
// always produce the same bytes.
type Renderer interface {
	Render(rows []model.Submission) ([]byte, error)
}

// Column describes one table column. Width is relative; renderers scale the
// widths to the printable area.
type Column struct {
	Header string
	Width  float64
	MaxLen int
	Value  func(model.Submission) string
}

// Columns is the fixed column order of the export table.
var Columns = []Column{
	{Header: "ID", Width: 0.5, MaxLen: noTruncation, Value: func(s model.Submission) string { return strconv.FormatInt(s.ID, 10) }},
	{Header: "Name", Width: 1.2, MaxLen: 30, Value: func(s model.Submission) string { return s.Name }},
	{Header: "Email", Width: 1.5, MaxLen: 40, Value: func(s model.Submission) string { return s.Email }},
	{Header: "Phone", Width: 1.0, MaxLen: 20, Value: func(s model.Submission) string { return s.Phone }},
	{Header: "Company", Width: 1.2, MaxLen: 25, Value: func(s model.Submission) string { return s.Company }},
	{Header: "Project Type", Width: 1.0, MaxLen: 20, Value: func(s model.Submission) string { return s.ProjectType }},
	{Header: "Budget Range", Width: 0.8, MaxLen: 15, Value: func(s model.Submission) string { return s.BudgetRange }},
	{Header: "Timeline", Width: 0.8, MaxLen: 15, Value: func(s model.Submission) string { return s.Timeline }},
	{Header: "Created Date", Width: 1.0, MaxLen: noTruncation, Value: func(s model.Submission) string { return FormatTimestamp(s.CreatedAt) }},
	{Header: "Project Details", Width: 2.0, MaxLen: 100, Value: func(s model.Submission) string { return s.ProjectDetails }},
}

// Cells returns the formatted, truncated cell values of one row in column order.
func Cells(s model.Submission) []string {
	cells := make([]string, len(Columns))
	for i, col := range Columns {
		cells[i] = Truncate(col.Value(s), col.MaxLen)
	}
	return cells
}

// Truncate cuts s to maxLen runes and appends "..." when anything was cut.
// A maxLen of zero disables truncation.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen]) + ellipsis
}

// FormatTimestamp renders t in UTC as YYYY-MM-DD HH:MM; the zero time is "".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimestampFmt)
}

// documentDate is the newest created_at in rows, or the Unix epoch when rows
// is empty. Pinning document metadata to it keeps output deterministic.
func documentDate(rows []model.Submission) time.Time {
	latest := time.Unix(0, 0).UTC()
	for _, r := range rows {
		if r.CreatedAt.After(latest) {
			latest = r.CreatedAt.UTC()
		}
	}
	return latest
}
