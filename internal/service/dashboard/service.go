package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendash/attendance-backend-go/internal/domain/employee"
	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/attendash/attendance-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	windows        settings.WindowsService
}

func NewDashboardService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	windows settings.WindowsService,
) dashboard.Service {
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		windows:        windows,
	}
}

// resolveDay parses an optional YYYY-MM-DD value, defaulting to today.
func resolveDay(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	day, ok := validator.IsValidDate(date)
	if !ok {
		return time.Time{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		}}
	}
	return day, nil
}

// load fetches the roster, the day's records, and the windows concurrently.
func (s *DashboardServiceImpl) load(ctx context.Context, day time.Time) ([]employee.Employee, []attendance.Record, settings.TimeWindows, error) {
	var (
		roster  []employee.Employee
		records []attendance.Record
		w       settings.TimeWindows
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.employeeRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load roster: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByDate(gctx, day)
		if err != nil {
			return fmt.Errorf("failed to load day records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		w, err = s.windows.Windows(gctx)
		if err != nil {
			return fmt.Errorf("failed to load time windows: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, settings.TimeWindows{}, err
	}
	return roster, records, w, nil
}

// GetSummary implements dashboard.Service.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, date string) (dashboard.SummaryResponse, error) {
	day, err := resolveDay(date)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	roster, records, w, err := s.load(ctx, day)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	summary := dashboard.Summarize(roster, records, w)
	return dashboard.SummaryResponse{
		Date:           day.Format("2006-01-02"),
		TotalEmployees: summary.TotalEmployees,
		PresentToday:   summary.PresentToday,
		AbsentToday:    summary.AbsentToday,
		LateToday:      summary.LateToday,
		Chart:          summary.Chart,
	}, nil
}

// GetAbsentees implements dashboard.Service.
func (s *DashboardServiceImpl) GetAbsentees(ctx context.Context, date string) (dashboard.AbsenteesResponse, error) {
	day, err := resolveDay(date)
	if err != nil {
		return dashboard.AbsenteesResponse{}, err
	}

	roster, records, w, err := s.load(ctx, day)
	if err != nil {
		return dashboard.AbsenteesResponse{}, err
	}

	summary := dashboard.Summarize(roster, records, w)
	absentees := make([]employee.EmployeeResponse, 0, len(summary.Absentees))
	for _, emp := range summary.Absentees {
		absentees = append(absentees, employee.NewEmployeeResponse(emp))
	}

	return dashboard.AbsenteesResponse{
		Date:      day.Format("2006-01-02"),
		Absentees: absentees,
	}, nil
}
