package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records.
type Repository interface {
	// Create inserts a fresh login record. The (roll_number, date) pair is
	// unique; a concurrent duplicate insert fails at the constraint.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByRollNumberAndDate returns nil (no error) when the employee has no
	// record for that day.
	GetByRollNumberAndDate(ctx context.Context, rollNumber string, date time.Time) (*Record, error)

	// Update rewrites logout time and status on an existing record.
	Update(ctx context.Context, rec Record) (Record, error)

	// List returns records matching the filter, most recent first.
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)

	// ListByDate returns every record for one calendar day.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
}
