package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/dashboard"
)

// AttendanceJobs holds the background jobs around the attendance data. The
// only job today is an end-of-day summary line for the operations log;
// absences are never persisted, they stay derived so a dashboard read and
// the log can never disagree.
type AttendanceJobs struct {
	dashboardService dashboard.Service

	mu         sync.Mutex
	lastLogged string // YYYY-MM-DD of the last summary written
}

func NewAttendanceJobs(dashboardService dashboard.Service) *AttendanceJobs {
	return &AttendanceJobs{dashboardService: dashboardService}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_attendance_summary", 15*time.Minute, j.LogDailySummary)
}

// LogDailySummary writes one summary log line per day, after 23:00 local
// time, covering that day's attendance.
func (j *AttendanceJobs) LogDailySummary(ctx context.Context) error {
	now := time.Now()
	if now.Hour() < 23 {
		return nil
	}

	day := now.Format("2006-01-02")

	j.mu.Lock()
	already := j.lastLogged == day
	j.mu.Unlock()
	if already {
		return nil
	}

	summary, err := j.dashboardService.GetSummary(ctx, day)
	if err != nil {
		return err
	}

	slog.Info("daily attendance summary",
		"date", summary.Date,
		"total_employees", summary.TotalEmployees,
		"present", summary.PresentToday,
		"absent", summary.AbsentToday,
		"late", summary.LateToday,
	)

	j.mu.Lock()
	j.lastLogged = day
	j.mu.Unlock()
	return nil
}
