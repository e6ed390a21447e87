package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/domain/report"
	"github.com/attendash/attendance-backend-go/internal/domain/settings"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.Repository
	windows        settings.WindowsService
}

func NewReportService(attendanceRepo attendance.Repository, windows settings.WindowsService) report.Service {
	return &ReportServiceImpl{attendanceRepo: attendanceRepo, windows: windows}
}

// GetDailyReport implements report.Service.
func (s *ReportServiceImpl) GetDailyReport(ctx context.Context, filter report.DailyReportFilter) (report.DailyReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.DailyReportResponse{}, err
	}

	day := time.Now()
	if filter.Date != "" {
		var err error
		day, err = time.Parse("2006-01-02", filter.Date)
		if err != nil {
			return report.DailyReportResponse{}, fmt.Errorf("failed to parse report date: %w", err)
		}
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	w, err := s.windows.Windows(ctx)
	if err != nil {
		return report.DailyReportResponse{}, fmt.Errorf("failed to load time windows: %w", err)
	}

	records, err := s.attendanceRepo.ListByDate(ctx, day)
	if err != nil {
		return report.DailyReportResponse{}, fmt.Errorf("failed to load day records: %w", err)
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	resp := report.DailyReportResponse{
		Date: day.Format("2006-01-02"),
		Rows: make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Name), search) &&
			!strings.Contains(strings.ToLower(rec.RollNumber), search) {
			continue
		}

		row := attendance.NewRecordResponse(rec, w)
		resp.Rows = append(resp.Rows, row)

		resp.Summary.TotalRecords++
		if row.LoginStatus == string(attendance.LoginOnTime) {
			resp.Summary.OnTimeLogins++
		} else {
			resp.Summary.LateLogins++
		}
		if rec.HasLoggedOut() {
			resp.Summary.CheckedOut++
		}
	}

	return resp, nil
}
