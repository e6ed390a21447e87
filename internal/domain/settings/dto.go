package settings

import (
	"github.com/attendash/attendance-backend-go/internal/pkg/validator"
)

type UpdateWindowsRequest struct {
	LoginStart  string `json:"login_start"`
	LoginEnd    string `json:"login_end"`
	LogoutStart string `json:"logout_start"`
	LogoutEnd   string `json:"logout_end"`
}

func (r *UpdateWindowsRequest) Validate() error {
	var errs validator.ValidationErrors

	fields := []struct {
		name  string
		value string
	}{
		{"login_start", r.LoginStart},
		{"login_end", r.LoginEnd},
		{"logout_start", r.LogoutStart},
		{"logout_end", r.LogoutEnd},
	}
	for _, f := range fields {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: f.name + " is required",
			})
		} else if !validator.IsValidClock(f.value) {
			errs = append(errs, validator.ValidationError{
				Field:   f.name,
				Message: "must be a HH:MM clock time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WindowsResponse struct {
	LoginStart  string `json:"login_start"`
	LoginEnd    string `json:"login_end"`
	LogoutStart string `json:"logout_start"`
	LogoutEnd   string `json:"logout_end"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

func NewWindowsResponse(w TimeWindows) WindowsResponse {
	resp := WindowsResponse{
		LoginStart:  w.LoginStart.String(),
		LoginEnd:    w.LoginEnd.String(),
		LogoutStart: w.LogoutStart.String(),
		LogoutEnd:   w.LogoutEnd.String(),
	}
	if !w.UpdatedAt.IsZero() {
		resp.UpdatedAt = w.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}
