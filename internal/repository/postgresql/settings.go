package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/attendash/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type windowsRepository struct {
	db *database.DB
}

func NewWindowsRepository(db *database.DB) settings.WindowsRepository {
	return &windowsRepository{db: db}
}

// The configuration is a single row keyed by a fixed id; Save upserts it so
// first write and later edits go through the same statement.
const windowsRowID = 1

// Get implements settings.WindowsRepository.
func (r *windowsRepository) Get(ctx context.Context) (settings.TimeWindows, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	var loginStart, loginEnd, logoutStart, logoutEnd string
	var updatedAt time.Time
	err := q.QueryRow(ctx, `
		SELECT login_start, login_end, logout_start, logout_end, updated_at
		FROM time_windows
		WHERE id = $1
	`, windowsRowID).Scan(&loginStart, &loginEnd, &logoutStart, &logoutEnd, &updatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.TimeWindows{}, settings.ErrWindowsNotFound
		}
		return settings.TimeWindows{}, fmt.Errorf("failed to get time windows: %w", database.MapError(err))
	}

	w, err := settings.ParseWindows(loginStart, loginEnd, logoutStart, logoutEnd)
	if err != nil {
		return settings.TimeWindows{}, fmt.Errorf("stored time windows are malformed: %w", err)
	}
	w.UpdatedAt = updatedAt
	return w, nil
}

// Save implements settings.WindowsRepository.
func (r *windowsRepository) Save(ctx context.Context, w settings.TimeWindows) (settings.TimeWindows, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO time_windows (id, login_start, login_end, logout_start, logout_end, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			login_start = EXCLUDED.login_start,
			login_end = EXCLUDED.login_end,
			logout_start = EXCLUDED.logout_start,
			logout_end = EXCLUDED.logout_end,
			updated_at = NOW()
		RETURNING updated_at
	`, windowsRowID,
		w.LoginStart.String(), w.LoginEnd.String(),
		w.LogoutStart.String(), w.LogoutEnd.String(),
	).Scan(&w.UpdatedAt)

	if err != nil {
		return settings.TimeWindows{}, fmt.Errorf("failed to save time windows: %w", database.MapError(err))
	}

	return w, nil
}
