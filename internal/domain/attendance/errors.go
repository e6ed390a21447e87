package attendance

import "errors"

// Attendance domain errors
var (
	// ErrUnknownFingerprint means a scan arrived from a fingerprint id that
	// no employee is enrolled with. No record is created.
	ErrUnknownFingerprint = errors.New("fingerprint is not enrolled to any employee")

	ErrRecordNotFound = errors.New("attendance record not found")
)
