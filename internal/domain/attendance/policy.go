package attendance

import (
	"github.com/attendash/attendance-backend-go/internal/domain/settings"
)

// The time-window policy. Pure functions of (time, windows); both the write
// path (scan reconciliation) and the read path (dashboard, reports) classify
// through here so the two can never drift.

type LoginStatus string

const (
	LoginOnTime LoginStatus = "on_time"
	LoginLate   LoginStatus = "late"
)

type LogoutStatus string

const (
	LogoutOnTime LogoutStatus = "left_on_time"
	LogoutEarly  LogoutStatus = "left_early"
)

// DayStatus is the overall derived status for an employee's day.
type DayStatus string

const (
	DayPresent    DayStatus = "present"
	DayLate       DayStatus = "late"
	DayAbsent     DayStatus = "absent"
	DayLeftOnTime DayStatus = "left_on_time"
	DayLeftEarly  DayStatus = "left_early"
)

// ClassifyLogin classifies a login scan time. On time iff the time falls
// inside [LoginStart, LoginEnd], boundaries inclusive. A scan before the
// window opens is still on time; there is no "too early" outcome.
func ClassifyLogin(t settings.MinuteOfDay, w settings.TimeWindows) LoginStatus {
	if t <= w.LoginEnd {
		return LoginOnTime
	}
	return LoginLate
}

// ClassifyLogout classifies a logout scan time. Left on time iff the time
// falls inside [LogoutStart, LogoutEnd], boundaries inclusive. Anything
// outside the window, including a departure after LogoutEnd, reads as left
// early. That inversion for late departures is inherited behavior; do not
// change it without product sign-off.
func ClassifyLogout(t settings.MinuteOfDay, w settings.TimeWindows) LogoutStatus {
	if t >= w.LogoutStart && t <= w.LogoutEnd {
		return LogoutOnTime
	}
	return LogoutEarly
}

// ClassifyDay derives the overall status for one employee's day. A nil
// record means absent. With only a login, the login classification decides.
// Once a logout exists its classification supersedes the login's: a
// checked-out employee counts as present for the day even if they arrived
// late.
func ClassifyDay(rec *Record, w settings.TimeWindows) DayStatus {
	if rec == nil {
		return DayAbsent
	}
	if rec.LogoutTime != nil {
		switch ClassifyLogout(settings.ClockOf(*rec.LogoutTime), w) {
		case LogoutOnTime:
			return DayLeftOnTime
		default:
			return DayLeftEarly
		}
	}
	if ClassifyLogin(settings.ClockOf(rec.LoginTime), w) == LoginLate {
		return DayLate
	}
	return DayPresent
}
