package employee

import (
	"github.com/attendash/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	RollNumber string `json:"rollno"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	JoinDate   string `json:"join_date"`
	Status     string `json:"status"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RollNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "rollno",
			Message: "rollno is required",
		})
	} else if !validator.IsValidRollNumber(r.RollNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "rollno",
			Message: "rollno may contain letters, digits, and dashes only",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}

	if r.Phone != "" && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if validator.IsEmpty(r.JoinDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be YYYY-MM-DD",
		})
	}

	if r.Status == "" {
		r.Status = string(StatusActive)
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string `json:"-"`
	RollNumber string `json:"rollno"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	JoinDate   string `json:"join_date"`
	Status     string `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		RollNumber: r.RollNumber,
		Name:       r.Name,
		Department: r.Department,
		Position:   r.Position,
		Email:      r.Email,
		Phone:      r.Phone,
		JoinDate:   r.JoinDate,
		Status:     r.Status,
	}
	if err := create.Validate(); err != nil {
		return err
	}
	r.Status = create.Status
	return nil
}

// EnrollRequest binds a scanner fingerprint slot to an employee. Sent by the
// device after it captures a print for the first pending employee.
type EnrollRequest struct {
	RollNumber    string `json:"rollno"`
	FingerprintID string `json:"fingerId"`
}

func (r *EnrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RollNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "rollno",
			Message: "rollno is required",
		})
	}

	if validator.IsEmpty(r.FingerprintID) {
		errs = append(errs, validator.ValidationError{
			Field:   "fingerId",
			Message: "fingerId is required",
		})
	} else if !validator.IsValidFingerprintID(r.FingerprintID) {
		errs = append(errs, validator.ValidationError{
			Field:   "fingerId",
			Message: "fingerId must be numeric",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	RollNumber    string  `json:"rollno"`
	Name          string  `json:"name"`
	Department    string  `json:"department"`
	Position      string  `json:"position"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	JoinDate      string  `json:"join_date"`
	Status        string  `json:"status"`
	FingerprintID *string `json:"finger_id"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		RollNumber:    e.RollNumber,
		Name:          e.Name,
		Department:    e.Department,
		Position:      e.Position,
		Email:         e.Email,
		Phone:         e.Phone,
		JoinDate:      e.JoinDate.Format("2006-01-02"),
		Status:        string(e.Status),
		FingerprintID: e.FingerprintID,
		CreatedAt:     e.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     e.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
