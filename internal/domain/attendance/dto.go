package attendance

import (
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/attendash/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ScanRequest is the payload the fingerprint device posts on every scan.
// The device redundantly supplies roll number and name, but identity is
// resolved server-side from the fingerprint id once enrollment exists.
type ScanRequest struct {
	FingerprintID string `json:"finger_id"`
	RollNumber    string `json:"rollno"`
	Name          string `json:"name"`

	// ScannedAt is stamped by the handler at receipt time; the device does
	// not send a clock.
	ScannedAt time.Time `json:"-"`
}

func (r *ScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FingerprintID) {
		errs = append(errs, validator.ValidationError{
			Field:   "finger_id",
			Message: "finger_id is required",
		})
	} else if !validator.IsValidFingerprintID(r.FingerprintID) {
		errs = append(errs, validator.ValidationError{
			Field:   "finger_id",
			Message: "finger_id must be numeric",
		})
	}

	if validator.IsEmpty(r.RollNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "rollno",
			Message: "rollno is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ScanOutcome distinguishes a fresh login record from a logout update.
type ScanOutcome string

const (
	OutcomeCreated ScanOutcome = "created"
	OutcomeUpdated ScanOutcome = "updated"
)

type ScanResponse struct {
	Outcome ScanOutcome    `json:"outcome"`
	Record  RecordResponse `json:"record"`
}

type RecordResponse struct {
	ID            string  `json:"id"`
	FingerprintID string  `json:"finger_id"`
	RollNumber    string  `json:"rollno"`
	Name          string  `json:"name"`
	Date          string  `json:"date"`
	LoginTime     string  `json:"login_time"`
	LogoutTime    *string `json:"logout_time"`
	Status        string  `json:"status"`
	LoginStatus   string  `json:"login_status"`
	LogoutStatus  *string `json:"logout_status"`
	DayStatus     string  `json:"day_status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// NewRecordResponse maps a record to its API shape, deriving the display
// statuses from the windows in force right now.
func NewRecordResponse(rec Record, w settings.TimeWindows) RecordResponse {
	resp := RecordResponse{
		ID:            rec.ID,
		FingerprintID: rec.FingerprintID,
		RollNumber:    rec.RollNumber,
		Name:          rec.Name,
		Date:          rec.Date.Format("2006-01-02"),
		LoginTime:     rec.LoginTime.Format("15:04:05"),
		Status:        string(rec.Status),
		LoginStatus:   string(ClassifyLogin(settings.ClockOf(rec.LoginTime), w)),
		DayStatus:     string(ClassifyDay(&rec, w)),
		CreatedAt:     rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if rec.LogoutTime != nil {
		logout := rec.LogoutTime.Format("15:04:05")
		resp.LogoutTime = &logout
		logoutStatus := string(ClassifyLogout(settings.ClockOf(*rec.LogoutTime), w))
		resp.LogoutStatus = &logoutStatus
	}
	return resp
}

// RecordFilter narrows the record listing. Both fields are optional.
type RecordFilter struct {
	RollNumber *string
	Date       *string
	Page       int
	Limit      int
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
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

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}
