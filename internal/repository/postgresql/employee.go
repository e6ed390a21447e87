package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendash/attendance-backend-go/internal/domain/employee"
	"github.com/attendash/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, roll_number, name, department, position, email, phone,
	join_date, status, fingerprint_id, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.RollNumber, &emp.Name, &emp.Department, &emp.Position,
		&emp.Email, &emp.Phone, &emp.JoinDate, &emp.Status, &emp.FingerprintID,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.Repository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, roll_number, name, department, position, email, phone,
			join_date, status, fingerprint_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULL)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.RollNumber, emp.Name, emp.Department, emp.Position,
		emp.Email, emp.Phone, emp.JoinDate, emp.Status,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "employees_roll_number_key") {
			return employee.Employee{}, employee.ErrRollNumberExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", database.MapError(err))
	}

	return emp, nil
}

// GetByID implements employee.Repository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", database.MapError(err))
	}
	return emp, nil
}

// GetByRollNumber implements employee.Repository.
func (r *employeeRepository) GetByRollNumber(ctx context.Context, rollNumber string) (employee.Employee, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE roll_number = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, rollNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by roll number: %w", database.MapError(err))
	}
	return emp, nil
}

// GetByFingerprintID implements employee.Repository.
func (r *employeeRepository) GetByFingerprintID(ctx context.Context, fingerprintID string) (employee.Employee, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE fingerprint_id = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, fingerprintID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by fingerprint: %w", database.MapError(err))
	}
	return emp, nil
}

// Update implements employee.Repository. The fingerprint id is deliberately
// not part of the update set; enrollment is the only writer of that column.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET roll_number = $2, name = $3, department = $4, position = $5,
		    email = $6, phone = $7, join_date = $8, status = $9,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING fingerprint_id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.RollNumber, emp.Name, emp.Department, emp.Position,
		emp.Email, emp.Phone, emp.JoinDate, emp.Status,
	).Scan(&emp.FingerprintID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err, "employees_roll_number_key") {
			return employee.Employee{}, employee.ErrRollNumberExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", database.MapError(err))
	}

	return emp, nil
}

// Delete implements employee.Repository. It removes the employee and their
// attendance rows in one transaction; records are keyed by roll number, so
// leaving them behind would let a reused roll number inherit someone else's
// history. Deletion is final, there is no soft-delete in this roster.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		q := GetQuerier(ContextWithTx(ctx, tx), r.db)

		var rollNumber string
		err := q.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 RETURNING roll_number`, id).Scan(&rollNumber)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to delete employee: %w", database.MapError(err))
		}

		if _, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE roll_number = $1`, rollNumber); err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", database.MapError(err))
		}
		return nil
	})
}

// List implements employee.Repository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", database.MapError(err))
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListPending implements employee.Repository.
func (r *employeeRepository) ListPending(ctx context.Context) ([]employee.Employee, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE fingerprint_id IS NULL
		ORDER BY created_at ASC`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending employees: %w", database.MapError(err))
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// SetFingerprintID implements employee.Repository. The WHERE clause makes
// the write-once rule atomic: no row changes when the roll number is unknown
// or a fingerprint is already set.
func (r *employeeRepository) SetFingerprintID(ctx context.Context, rollNumber, fingerprintID string) (bool, error) {
	ctx, cancel := database.WithQueryTimeout(ctx)
	defer cancel()
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees
		SET fingerprint_id = $1, updated_at = NOW()
		WHERE roll_number = $2 AND fingerprint_id IS NULL
	`, fingerprintID, rollNumber)
	if err != nil {
		if isUniqueViolation(err, "employees_fingerprint_id_key") {
			return false, employee.ErrFingerprintInUse
		}
		return false, fmt.Errorf("failed to set fingerprint id: %w", database.MapError(err))
	}

	return tag.RowsAffected() > 0, nil
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("employee rows error: %w", database.MapError(err))
	}
	return employees, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
	}
	return false
}
