package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input string
		want  MinuteOfDay
		ok    bool
	}{
		{"09:00", 540, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"16:30:45", 990, true},
		{"24:00", 0, false},
		{"9am", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.ok {
			require.NoError(t, err, "ParseClock(%q)", c.input)
			assert.Equal(t, c.want, got, "ParseClock(%q)", c.input)
		} else {
			assert.Error(t, err, "ParseClock(%q)", c.input)
		}
	}
}

func TestMinuteOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", MinuteOfDay(545).String())
	assert.Equal(t, "00:00", MinuteOfDay(0).String())
	assert.Equal(t, "23:59", MinuteOfDay(1439).String())
}

func TestClockOf(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 30, 59, 0, time.UTC)
	assert.Equal(t, MinuteOfDay(570), ClockOf(ts))
}

func TestParseWindows(t *testing.T) {
	w, err := ParseWindows("09:00", "09:45", "16:25", "16:45")
	require.NoError(t, err)
	assert.Equal(t, MinuteOfDay(540), w.LoginStart)
	assert.Equal(t, MinuteOfDay(585), w.LoginEnd)
	assert.Equal(t, MinuteOfDay(985), w.LogoutStart)
	assert.Equal(t, MinuteOfDay(1005), w.LogoutEnd)
}

func TestParseWindowsInvalidOrder(t *testing.T) {
	_, err := ParseWindows("09:45", "09:00", "16:25", "16:45")
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = ParseWindows("09:00", "09:45", "16:45", "16:25")
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestValidateEqualBoundaries(t *testing.T) {
	w := TimeWindows{LoginStart: 540, LoginEnd: 540, LogoutStart: 985, LogoutEnd: 985}
	assert.NoError(t, w.Validate())
}

func TestUpdateWindowsRequestValidate(t *testing.T) {
	req := UpdateWindowsRequest{LoginStart: "09:00", LoginEnd: "09:45", LogoutStart: "16:25", LogoutEnd: "16:45"}
	assert.NoError(t, req.Validate())

	bad := UpdateWindowsRequest{LoginStart: "morning", LoginEnd: "09:45", LogoutStart: "", LogoutEnd: "16:45"}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login_start")
	assert.Contains(t, err.Error(), "logout_start")
}
