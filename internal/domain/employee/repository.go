package employee

import (
	"context"
)

// Repository defines data access for the employee roster.
type Repository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (Employee, error)

	// GetByFingerprintID resolves a scanner identity to an employee.
	// Returns ErrEmployeeNotFound when nobody is enrolled with that id.
	GetByFingerprintID(ctx context.Context, fingerprintID string) (Employee, error)

	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error

	// List returns the full roster, newest first.
	List(ctx context.Context) ([]Employee, error)

	// ListPending returns employees awaiting fingerprint enrollment, oldest
	// first so the device enrolls them in onboarding order.
	ListPending(ctx context.Context) ([]Employee, error)

	// SetFingerprintID assigns the fingerprint only when none is set yet.
	// The conditional update is atomic; it reports false when no row changed
	// (unknown roll number or already enrolled).
	SetFingerprintID(ctx context.Context, rollNumber, fingerprintID string) (bool, error)
}
