package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/domain/dashboard"
	"github.com/attendash/attendance-backend-go/internal/domain/employee"
	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByRollNumberAndDate(ctx context.Context, rollNumber string, date time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	return rec, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	roster []employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByRollNumber(ctx context.Context, rollNumber string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByFingerprintID(ctx context.Context, fingerprintID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.roster, nil
}

func (f *fakeEmployeeRepo) ListPending(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) SetFingerprintID(ctx context.Context, rollNumber, fingerprintID string) (bool, error) {
	return false, nil
}

type staticWindows struct {
	w settings.TimeWindows
}

func (s *staticWindows) Windows(ctx context.Context) (settings.TimeWindows, error) {
	return s.w, nil
}

func (s *staticWindows) Update(ctx context.Context, req settings.UpdateWindowsRequest) (settings.WindowsResponse, error) {
	return settings.NewWindowsResponse(s.w), nil
}

func (s *staticWindows) Get(ctx context.Context) (settings.WindowsResponse, error) {
	return settings.NewWindowsResponse(s.w), nil
}

func seedDay(t *testing.T) time.Time {
	t.Helper()
	day, err := time.Parse("2006-01-02", "2026-03-02")
	require.NoError(t, err)
	return day
}

func loginAt(t *testing.T, day time.Time, clock string) time.Time {
	t.Helper()
	at, err := time.Parse("2006-01-02 15:04:05", day.Format("2006-01-02")+" "+clock)
	require.NoError(t, err)
	return at
}

func newTestService(t *testing.T, roster []employee.Employee, records []attendance.Record) dashboard.Service {
	t.Helper()
	w, err := settings.ParseWindows("09:00", "09:45", "16:25", "16:45")
	require.NoError(t, err)
	return NewDashboardService(
		&fakeAttendanceRepo{records: records},
		&fakeEmployeeRepo{roster: roster},
		&staticWindows{w: w},
	)
}

func TestGetSummaryCountsMatchRoster(t *testing.T) {
	day := seedDay(t)
	roster := []employee.Employee{
		{RollNumber: "EMP-1", Name: "Asha Verma"},
		{RollNumber: "EMP-2", Name: "Ravi Nair"},
		{RollNumber: "EMP-3", Name: "Meera Pillai"},
	}
	records := []attendance.Record{
		{RollNumber: "EMP-1", Name: "Asha Verma", Date: day, LoginTime: loginAt(t, day, "09:10:00"), Status: attendance.StatusPresent},
		{RollNumber: "EMP-2", Name: "Ravi Nair", Date: day, LoginTime: loginAt(t, day, "10:05:00"), Status: attendance.StatusPresent},
	}

	svc := newTestService(t, roster, records)
	resp, err := svc.GetSummary(context.Background(), "2026-03-02")
	require.NoError(t, err)

	assert.Equal(t, 3, resp.TotalEmployees)
	assert.Equal(t, 2, resp.PresentToday)
	assert.Equal(t, 1, resp.AbsentToday)
	assert.Equal(t, 1, resp.LateToday)
	assert.Equal(t, resp.TotalEmployees, resp.PresentToday+resp.AbsentToday)
	assert.Equal(t, 1, resp.Chart.OnTime)
	assert.Equal(t, 1, resp.Chart.Late)
	assert.Equal(t, 1, resp.Chart.Absent)
}

func TestGetAbsenteesComplement(t *testing.T) {
	day := seedDay(t)
	roster := []employee.Employee{
		{RollNumber: "EMP-1", Name: "Asha Verma"},
		{RollNumber: "EMP-2", Name: "Ravi Nair"},
	}
	records := []attendance.Record{
		{RollNumber: "EMP-1", Name: "Asha Verma", Date: day, LoginTime: loginAt(t, day, "09:10:00"), Status: attendance.StatusPresent},
	}

	svc := newTestService(t, roster, records)
	resp, err := svc.GetAbsentees(context.Background(), "2026-03-02")
	require.NoError(t, err)

	require.Len(t, resp.Absentees, 1)
	assert.Equal(t, "EMP-2", resp.Absentees[0].RollNumber)
	assert.Equal(t, "2026-03-02", resp.Date)
}

func TestGetSummaryRejectsBadDate(t *testing.T) {
	svc := newTestService(t, nil, nil)

	_, err := svc.GetSummary(context.Background(), "03/02/2026")
	assert.Error(t, err)
}

func TestGetSummaryEmptyRoster(t *testing.T) {
	svc := newTestService(t, nil, nil)

	resp, err := svc.GetSummary(context.Background(), "2026-03-02")
	require.NoError(t, err)

	assert.Zero(t, resp.TotalEmployees)
	assert.Zero(t, resp.PresentToday)
	assert.Zero(t, resp.AbsentToday)
}
