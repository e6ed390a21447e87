package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const recordColumns = `
	id, fingerprint_id, roll_number, name, date, login_time, logout_time,
	status, created_at, updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.FingerprintID, &rec.RollNumber, &rec.Name, &rec.Date,
		&rec.LoginTime, &rec.LogoutTime, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.Repository. UNIQUE(roll_number, date) is the
// durable backstop against a double-created day; the service serializes
// same-identity scans before ever reaching this.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, fingerprint_id, roll_number, name, date, login_time, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID, rec.FingerprintID, rec.RollNumber, rec.Name,
		rec.Date, rec.LoginTime, rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", database.MapError(err))
	}

	return rec, nil
}

// GetByRollNumberAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByRollNumberAndDate(ctx context.Context, rollNumber string, date time.Time) (*attendance.Record, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records
		WHERE roll_number = $1 AND date = $2
		LIMIT 1`

	rec, err := scanRecord(q.QueryRow(ctx, query, rollNumber, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this employee today
		}
		return nil, fmt.Errorf("failed to get record by roll number and date: %w", database.MapError(err))
	}

	return &rec, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET logout_time = $2, status = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, rec.ID, rec.LogoutTime, rec.Status).Scan(&rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to update attendance record: %w", database.MapError(err))
	}

	return rec, nil
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.RollNumber != nil && *filter.RollNumber != "" {
		baseWhere += fmt.Sprintf(" AND roll_number = $%d", argIdx)
		args = append(args, *filter.RollNumber)
		argIdx++
	}

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_records WHERE " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", database.MapError(err))
	}

	query := `SELECT ` + recordColumns + ` FROM attendance_records WHERE ` + baseWhere +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", database.MapError(err))
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM attendance_records
		WHERE date = $1
		ORDER BY login_time ASC`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list records by date: %w", database.MapError(err))
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	records := make([]attendance.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("attendance rows error: %w", database.MapError(err))
	}
	return records, nil
}
