package employee

import (
	"context"
)

// Service defines business logic for roster operations.
type Service interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	GetByFingerprint(ctx context.Context, fingerprintID string) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// ListPending is the device's enrollment queue: employees with no
	// fingerprint yet, oldest first.
	ListPending(ctx context.Context) ([]EmployeeResponse, error)

	// Enroll sets the fingerprint id exactly once. Fails with
	// ErrAlreadyEnrolled / ErrEmployeeNotFound / ErrFingerprintInUse and
	// leaves the roster unchanged in every failure case.
	Enroll(ctx context.Context, req EnrollRequest) (EmployeeResponse, error)
}
