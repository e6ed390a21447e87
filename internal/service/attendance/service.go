package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/domain/employee"
	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/google/uuid"
)

// scanLocks serializes scan handling per (roll number, day). Two scans for
// the same employee on the same day never race between the read and the
// write; the UNIQUE(roll_number, date) constraint backstops anything that
// slips past a multi-instance deployment.
type scanLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newScanLocks() *scanLocks {
	return &scanLocks{locks: make(map[string]*sync.Mutex)}
}

func (s *scanLocks) lock(key string) *sync.Mutex {
	s.mu.Lock()
	m, ok := s.locks[key]
	if !ok {
		m = &sync.Mutex{}
		s.locks[key] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m
}

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	windows        settings.WindowsService
	locks          *scanLocks
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	windows settings.WindowsService,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		windows:        windows,
		locks:          newScanLocks(),
	}
}

// HandleScan implements attendance.Service.
func (s *AttendanceServiceImpl) HandleScan(ctx context.Context, req attendance.ScanRequest) (attendance.ScanResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ScanResponse{}, err
	}

	// Identity is the enrolled fingerprint, not the rollno the device sends.
	// The device payload can be stale after roster edits.
	emp, err := s.employeeRepo.GetByFingerprintID(ctx, req.FingerprintID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.ScanResponse{}, attendance.ErrUnknownFingerprint
		}
		return attendance.ScanResponse{}, fmt.Errorf("failed to resolve fingerprint: %w", err)
	}

	w, err := s.windows.Windows(ctx)
	if err != nil {
		return attendance.ScanResponse{}, fmt.Errorf("failed to load time windows: %w", err)
	}

	scannedAt := req.ScannedAt
	if scannedAt.IsZero() {
		scannedAt = time.Now()
	}
	day := time.Date(scannedAt.Year(), scannedAt.Month(), scannedAt.Day(), 0, 0, 0, 0, scannedAt.Location())

	m := s.locks.lock(emp.RollNumber + "|" + day.Format("2006-01-02"))
	defer m.Unlock()

	existing, err := s.attendanceRepo.GetByRollNumberAndDate(ctx, emp.RollNumber, day)
	if err != nil {
		return attendance.ScanResponse{}, fmt.Errorf("failed to load today's record: %w", err)
	}

	if existing == nil {
		rec := attendance.Record{
			ID:            uuid.NewString(),
			FingerprintID: req.FingerprintID,
			RollNumber:    emp.RollNumber,
			Name:          emp.Name,
			Date:          day,
			LoginTime:     scannedAt,
			Status:        attendance.StatusPresent,
		}
		created, err := s.attendanceRepo.Create(ctx, rec)
		if err != nil {
			return attendance.ScanResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
		return attendance.ScanResponse{
			Outcome: attendance.OutcomeCreated,
			Record:  attendance.NewRecordResponse(created, w),
		}, nil
	}

	// Second scan logs the employee out; any later scan moves the logout
	// time forward so the last scan of the day wins.
	logout := scannedAt
	existing.LogoutTime = &logout
	existing.Status = attendance.StatusLeft

	updated, err := s.attendanceRepo.Update(ctx, *existing)
	if err != nil {
		return attendance.ScanResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return attendance.ScanResponse{
		Outcome: attendance.OutcomeUpdated,
		Record:  attendance.NewRecordResponse(updated, w),
	}, nil
}

// ListRecords implements attendance.Service.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	w, err := s.windows.Windows(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to load time windows: %w", err)
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		resp.Records = append(resp.Records, attendance.NewRecordResponse(rec, w))
	}
	return resp, nil
}
