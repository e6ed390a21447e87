package settings

import (
	"context"
	"testing"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindowsRepo struct {
	stored *settings.TimeWindows
}

func (f *fakeWindowsRepo) Get(ctx context.Context) (settings.TimeWindows, error) {
	if f.stored == nil {
		return settings.TimeWindows{}, settings.ErrWindowsNotFound
	}
	return *f.stored, nil
}

func (f *fakeWindowsRepo) Save(ctx context.Context, w settings.TimeWindows) (settings.TimeWindows, error) {
	w.UpdatedAt = time.Now()
	f.stored = &w
	return w, nil
}

func TestUpdatePersistsNewWindows(t *testing.T) {
	repo := &fakeWindowsRepo{}
	svc := NewWindowsService(repo)

	resp, err := svc.Update(context.Background(), settings.UpdateWindowsRequest{
		LoginStart:  "08:30",
		LoginEnd:    "09:15",
		LogoutStart: "17:00",
		LogoutEnd:   "17:30",
	})
	require.NoError(t, err)

	assert.Equal(t, "08:30", resp.LoginStart)
	assert.Equal(t, "17:30", resp.LogoutEnd)
	assert.NotEmpty(t, resp.UpdatedAt)

	// The next read sees the new values immediately.
	w, err := svc.Windows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "09:15", w.LoginEnd.String())
}

func TestUpdateRejectsInvertedWindow(t *testing.T) {
	svc := NewWindowsService(&fakeWindowsRepo{})

	_, err := svc.Update(context.Background(), settings.UpdateWindowsRequest{
		LoginStart:  "10:00",
		LoginEnd:    "09:00",
		LogoutStart: "16:00",
		LogoutEnd:   "17:00",
	})
	assert.ErrorIs(t, err, settings.ErrInvalidWindow)
}

func TestUpdateRejectsMalformedClock(t *testing.T) {
	svc := NewWindowsService(&fakeWindowsRepo{})

	_, err := svc.Update(context.Background(), settings.UpdateWindowsRequest{
		LoginStart:  "9 o'clock",
		LoginEnd:    "09:45",
		LogoutStart: "16:25",
		LogoutEnd:   "16:45",
	})
	assert.Error(t, err)
}

func TestGetUnconfigured(t *testing.T) {
	svc := NewWindowsService(&fakeWindowsRepo{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, settings.ErrWindowsNotFound)
}
