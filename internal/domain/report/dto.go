package report

import (
	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/pkg/validator"
)

// DailyReportFilter selects one calendar day, optionally narrowed by a
// case-insensitive name / roll number search.
type DailyReportFilter struct {
	Date   string
	Search string
}

func (f *DailyReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyReportResponse struct {
	Date    string                      `json:"date"`
	Summary ReportSummary               `json:"summary"`
	Rows    []attendance.RecordResponse `json:"rows"`
}

type ReportSummary struct {
	TotalRecords int `json:"total_records"`
	OnTimeLogins int `json:"on_time_logins"`
	LateLogins   int `json:"late_logins"`
	CheckedOut   int `json:"checked_out"`
}
