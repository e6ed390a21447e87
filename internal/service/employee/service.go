package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.Service.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
	}

	emp := employee.Employee{
		ID:         uuid.NewString(),
		RollNumber: req.RollNumber,
		Name:       req.Name,
		Department: req.Department,
		Position:   req.Position,
		Email:      req.Email,
		Phone:      req.Phone,
		JoinDate:   joinDate,
		Status:     employee.Status(req.Status),
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		if errors.Is(err, employee.ErrRollNumberExists) {
			return employee.EmployeeResponse{}, employee.ErrRollNumberExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.NewEmployeeResponse(created), nil
}

// GetEmployee implements employee.Service.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// GetByFingerprint implements employee.Service.
func (s *EmployeeServiceImpl) GetByFingerprint(ctx context.Context, fingerprintID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByFingerprintID(ctx, fingerprintID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// UpdateEmployee implements employee.Service. The fingerprint assignment is
// not touched here; enrollment is the only writer of that column.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse join date: %w", err)
	}

	current.RollNumber = req.RollNumber
	current.Name = req.Name
	current.Department = req.Department
	current.Position = req.Position
	current.Email = req.Email
	current.Phone = req.Phone
	current.JoinDate = joinDate
	current.Status = employee.Status(req.Status)

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, employee.ErrRollNumberExists) {
			return employee.EmployeeResponse{}, employee.ErrRollNumberExists
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.NewEmployeeResponse(updated), nil
}

// DeleteEmployee implements employee.Service.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// ListEmployees implements employee.Service.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return toResponses(employees), nil
}

// ListPending implements employee.Service.
func (s *EmployeeServiceImpl) ListPending(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending employees: %w", err)
	}
	return toResponses(employees), nil
}

// Enroll implements employee.Service.
func (s *EmployeeServiceImpl) Enroll(ctx context.Context, req employee.EnrollRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The conditional update only claims the fingerprint when none is set,
	// so a concurrent double-enroll cannot overwrite an assignment.
	claimed, err := s.employeeRepo.SetFingerprintID(ctx, req.RollNumber, req.FingerprintID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if !claimed {
		emp, err := s.employeeRepo.GetByRollNumber(ctx, req.RollNumber)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if emp.IsEnrolled() {
			return employee.EmployeeResponse{}, employee.ErrAlreadyEnrolled
		}
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByRollNumber(ctx, req.RollNumber)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee after enrollment: %w", err)
	}
	return employee.NewEmployeeResponse(emp), nil
}

func toResponses(employees []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}
	return responses
}
