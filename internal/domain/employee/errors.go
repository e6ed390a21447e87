package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrRollNumberExists   = errors.New("roll number already exists")
	ErrFingerprintInUse   = errors.New("fingerprint id already assigned to another employee")
	ErrAlreadyEnrolled    = errors.New("employee already has a fingerprint enrolled")
	ErrInvalidStatus      = errors.New("status must be active or inactive")
	ErrEnrollmentRequired = errors.New("employee has no fingerprint enrolled")
)
