package dashboard

import "context"

// Service defines the interface for dashboard reads. Every call recomputes
// from the roster and the day's records with the windows in force.
type Service interface {
	// GetSummary returns counts and the chart breakdown for a day
	// (YYYY-MM-DD, empty means today).
	GetSummary(ctx context.Context, date string) (SummaryResponse, error)

	// GetAbsentees returns roster members with no record for the day.
	GetAbsentees(ctx context.Context, date string) (AbsenteesResponse, error)
}
