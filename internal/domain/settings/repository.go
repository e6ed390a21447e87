package settings

import "context"

// WindowsRepository persists the single time-windows configuration row.
type WindowsRepository interface {
	// Get retrieves the configured windows. Returns ErrWindowsNotFound when
	// the row has never been written.
	Get(ctx context.Context) (TimeWindows, error)

	// Save upserts the configuration row.
	Save(ctx context.Context, w TimeWindows) (TimeWindows, error)
}
