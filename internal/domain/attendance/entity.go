package attendance

import (
	"time"
)

// Status is the coarse write-side state of a record: present after the first
// scan of the day, left once a logout has been recorded. The finer display
// statuses are derived on read and never persisted.
type Status string

const (
	StatusPresent Status = "present"
	StatusLeft    Status = "left"
)

// Record is one attendance row per (employee, calendar day), created lazily
// on the first scan of the day.
type Record struct {
	ID            string
	FingerprintID string
	RollNumber    string
	Name          string
	Date          time.Time
	LoginTime     time.Time
	LogoutTime    *time.Time
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasLoggedOut reports whether a logout scan has been recorded.
func (r Record) HasLoggedOut() bool {
	return r.LogoutTime != nil
}
