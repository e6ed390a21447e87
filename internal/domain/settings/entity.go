package settings

import (
	"fmt"
	"time"
)

// MinuteOfDay is a wall-clock time normalized to minutes since midnight.
// All window comparisons happen on this type so ordering is exact.
type MinuteOfDay int

// ParseClock parses "HH:MM" or "HH:MM:SS". Seconds are truncated.
func ParseClock(s string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		t, err = time.Parse("15:04:05", s)
		if err != nil {
			return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
		}
	}
	return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
}

// ClockOf truncates a timestamp to its minute of day.
func ClockOf(t time.Time) MinuteOfDay {
	return MinuteOfDay(t.Hour()*60 + t.Minute())
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// TimeWindows is the classification configuration: the login window and the
// logout window, each inclusive on both ends. It is always threaded as an
// explicit parameter into classification calls, never read from globals.
type TimeWindows struct {
	LoginStart  MinuteOfDay
	LoginEnd    MinuteOfDay
	LogoutStart MinuteOfDay
	LogoutEnd   MinuteOfDay
	UpdatedAt   time.Time
}

// Validate checks window ordering. Equal boundaries are allowed (a
// single-minute window is legal).
func (w TimeWindows) Validate() error {
	if w.LoginStart > w.LoginEnd {
		return ErrInvalidWindow
	}
	if w.LogoutStart > w.LogoutEnd {
		return ErrInvalidWindow
	}
	return nil
}

// ParseWindows builds TimeWindows from four clock strings.
func ParseWindows(loginStart, loginEnd, logoutStart, logoutEnd string) (TimeWindows, error) {
	var w TimeWindows
	var err error
	if w.LoginStart, err = ParseClock(loginStart); err != nil {
		return TimeWindows{}, err
	}
	if w.LoginEnd, err = ParseClock(loginEnd); err != nil {
		return TimeWindows{}, err
	}
	if w.LogoutStart, err = ParseClock(logoutStart); err != nil {
		return TimeWindows{}, err
	}
	if w.LogoutEnd, err = ParseClock(logoutEnd); err != nil {
		return TimeWindows{}, err
	}
	if err := w.Validate(); err != nil {
		return TimeWindows{}, err
	}
	return w, nil
}
