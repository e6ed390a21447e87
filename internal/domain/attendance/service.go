package attendance

import (
	"context"
)

// Service defines business logic for attendance operations
type Service interface {
	// HandleScan reconciles one scan event into a created or updated daily
	// record. First scan of the day logs the employee in; the next scan logs
	// them out; any further scan moves the logout time forward.
	HandleScan(ctx context.Context, req ScanRequest) (ScanResponse, error)

	// ListRecords retrieves records with optional roll number and date
	// filters, most recent first, statuses derived with current windows.
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)
}
