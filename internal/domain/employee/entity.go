package employee

import (
	"time"
)

type Employee struct {
	ID            string
	RollNumber    string
	Name          string
	Department    string
	Position      string
	Email         string
	Phone         string
	JoinDate      time.Time
	Status        Status
	FingerprintID *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsEnrolled reports whether the employee has a fingerprint slot on the
// scanner. Enrollment happens once; the id is immutable afterwards.
func (e Employee) IsEnrolled() bool {
	return e.FingerprintID != nil
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
