package attendance

import (
	"testing"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWindows(t *testing.T) settings.TimeWindows {
	t.Helper()
	w, err := settings.ParseWindows("09:00", "09:45", "16:25", "16:45")
	require.NoError(t, err)
	return w
}

func clockAt(t *testing.T, clock string) settings.MinuteOfDay {
	t.Helper()
	m, err := settings.ParseClock(clock)
	require.NoError(t, err)
	return m
}

func timeOn(day time.Time, clock string) time.Time {
	parsed, _ := time.Parse("15:04", clock)
	return time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}

func TestClassifyLogin(t *testing.T) {
	w := testWindows(t)

	cases := []struct {
		clock string
		want  LoginStatus
	}{
		{"08:00", LoginOnTime}, // before the window still counts as on time
		{"09:00", LoginOnTime}, // inclusive lower boundary
		{"09:30", LoginOnTime},
		{"09:45", LoginOnTime}, // inclusive upper boundary
		{"09:46", LoginLate},
		{"10:00", LoginLate},
		{"23:59", LoginLate},
	}
	for _, c := range cases {
		got := ClassifyLogin(clockAt(t, c.clock), w)
		assert.Equal(t, c.want, got, "login at %s", c.clock)
	}
}

func TestClassifyLogout(t *testing.T) {
	w := testWindows(t)

	cases := []struct {
		clock string
		want  LogoutStatus
	}{
		{"16:00", LogoutEarly},
		{"16:24", LogoutEarly},
		{"16:25", LogoutOnTime}, // inclusive lower boundary
		{"16:30", LogoutOnTime},
		{"16:45", LogoutOnTime}, // inclusive upper boundary
		// Departures after the window close also read as left early. This
		// mirrors the rule as deployed; see the policy doc comment.
		{"16:46", LogoutEarly},
		{"18:00", LogoutEarly},
	}
	for _, c := range cases {
		got := ClassifyLogout(clockAt(t, c.clock), w)
		assert.Equal(t, c.want, got, "logout at %s", c.clock)
	}
}

func TestClassifyDayNoRecord(t *testing.T) {
	w := testWindows(t)
	assert.Equal(t, DayAbsent, ClassifyDay(nil, w))
}

func TestClassifyDayLoginOnly(t *testing.T) {
	w := testWindows(t)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	onTime := Record{Date: day, LoginTime: timeOn(day, "09:30"), Status: StatusPresent}
	assert.Equal(t, DayPresent, ClassifyDay(&onTime, w))

	late := Record{Date: day, LoginTime: timeOn(day, "10:00"), Status: StatusPresent}
	assert.Equal(t, DayLate, ClassifyDay(&late, w))
}

func TestClassifyDayLogoutSupersedesLogin(t *testing.T) {
	w := testWindows(t)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	// Late arrival, on-time departure: the logout classification wins.
	logout := timeOn(day, "16:30")
	rec := Record{Date: day, LoginTime: timeOn(day, "11:00"), LogoutTime: &logout, Status: StatusLeft}
	assert.Equal(t, DayLeftOnTime, ClassifyDay(&rec, w))

	earlyOut := timeOn(day, "15:00")
	rec2 := Record{Date: day, LoginTime: timeOn(day, "09:10"), LogoutTime: &earlyOut, Status: StatusLeft}
	assert.Equal(t, DayLeftEarly, ClassifyDay(&rec2, w))
}

func TestNewRecordResponseDerivedStatuses(t *testing.T) {
	w := testWindows(t)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	logout := timeOn(day, "16:30")

	rec := Record{
		ID:            "rec-1",
		FingerprintID: "7",
		RollNumber:    "EMP-001",
		Name:          "Asha",
		Date:          day,
		LoginTime:     timeOn(day, "09:30"),
		LogoutTime:    &logout,
		Status:        StatusLeft,
		CreatedAt:     timeOn(day, "09:30"),
		UpdatedAt:     logout,
	}

	resp := NewRecordResponse(rec, w)
	assert.Equal(t, "on_time", resp.LoginStatus)
	require.NotNil(t, resp.LogoutStatus)
	assert.Equal(t, "left_on_time", *resp.LogoutStatus)
	assert.Equal(t, "left_on_time", resp.DayStatus)
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Equal(t, "16:30:00", *resp.LogoutTime)
}
