package settings

import (
	"context"
	"fmt"

	"github.com/attendash/attendance-backend-go/internal/domain/settings"
)

type WindowsServiceImpl struct {
	windowsRepo settings.WindowsRepository
}

func NewWindowsService(windowsRepo settings.WindowsRepository) settings.WindowsService {
	return &WindowsServiceImpl{windowsRepo: windowsRepo}
}

// Windows implements settings.WindowsService. It always reads through to the
// store so that an admin edit is visible to the very next scan.
func (s *WindowsServiceImpl) Windows(ctx context.Context) (settings.TimeWindows, error) {
	return s.windowsRepo.Get(ctx)
}

// Get implements settings.WindowsService.
func (s *WindowsServiceImpl) Get(ctx context.Context) (settings.WindowsResponse, error) {
	w, err := s.windowsRepo.Get(ctx)
	if err != nil {
		return settings.WindowsResponse{}, err
	}
	return settings.NewWindowsResponse(w), nil
}

// Update implements settings.WindowsService.
func (s *WindowsServiceImpl) Update(ctx context.Context, req settings.UpdateWindowsRequest) (settings.WindowsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.WindowsResponse{}, err
	}

	w, err := settings.ParseWindows(req.LoginStart, req.LoginEnd, req.LogoutStart, req.LogoutEnd)
	if err != nil {
		return settings.WindowsResponse{}, err
	}

	saved, err := s.windowsRepo.Save(ctx, w)
	if err != nil {
		return settings.WindowsResponse{}, fmt.Errorf("failed to save time windows: %w", err)
	}
	return settings.NewWindowsResponse(saved), nil
}
