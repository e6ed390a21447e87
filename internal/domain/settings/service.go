package settings

import "context"

// WindowsService exposes the time-window configuration to handlers and to
// every service that classifies times. Windows returns the value currently
// in force; classification callers must fetch it per request so a settings
// change is observed immediately.
type WindowsService interface {
	Windows(ctx context.Context) (TimeWindows, error)
	Update(ctx context.Context, req UpdateWindowsRequest) (WindowsResponse, error)
	Get(ctx context.Context) (WindowsResponse, error)
}
