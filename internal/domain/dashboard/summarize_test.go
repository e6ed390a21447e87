package dashboard

import (
	"testing"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/domain/employee"
	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summarizeWindows(t *testing.T) settings.TimeWindows {
	t.Helper()
	w, err := settings.ParseWindows("09:00", "09:45", "16:25", "16:45")
	require.NoError(t, err)
	return w
}

func rosterOf(rolls ...string) []employee.Employee {
	emps := make([]employee.Employee, 0, len(rolls))
	for _, roll := range rolls {
		emps = append(emps, employee.Employee{ID: "id-" + roll, RollNumber: roll, Name: "emp " + roll})
	}
	return emps
}

func recordAt(roll, clock string) attendance.Record {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	parsed, _ := time.Parse("15:04", clock)
	login := time.Date(day.Year(), day.Month(), day.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	return attendance.Record{RollNumber: roll, Date: day, LoginTime: login, Status: attendance.StatusPresent}
}

func TestSummarizeOneOfThreePresent(t *testing.T) {
	w := summarizeWindows(t)
	roster := rosterOf("A", "B", "C")
	records := []attendance.Record{recordAt("A", "09:30")}

	s := Summarize(roster, records, w)

	assert.Equal(t, 3, s.TotalEmployees)
	assert.Equal(t, 1, s.PresentToday)
	assert.Equal(t, 2, s.AbsentToday)
	assert.Equal(t, 0, s.LateToday)

	require.Len(t, s.Absentees, 2)
	assert.Equal(t, "B", s.Absentees[0].RollNumber)
	assert.Equal(t, "C", s.Absentees[1].RollNumber)
}

func TestSummarizeInvariantPresentPlusAbsent(t *testing.T) {
	w := summarizeWindows(t)

	cases := []struct {
		name    string
		roster  []employee.Employee
		records []attendance.Record
	}{
		{"empty roster", nil, nil},
		{"all absent", rosterOf("A", "B"), nil},
		{"all present", rosterOf("A", "B"), []attendance.Record{recordAt("A", "09:10"), recordAt("B", "10:30")}},
		{"record without roster match", rosterOf("A"), []attendance.Record{recordAt("Z", "09:10")}},
	}
	for _, c := range cases {
		s := Summarize(c.roster, c.records, w)
		assert.Equal(t, s.TotalEmployees, s.PresentToday+s.AbsentToday, c.name)
	}
}

func TestSummarizeLateCount(t *testing.T) {
	w := summarizeWindows(t)
	roster := rosterOf("A", "B", "C")
	records := []attendance.Record{
		recordAt("A", "09:30"), // on time
		recordAt("B", "10:00"), // late
	}

	s := Summarize(roster, records, w)

	assert.Equal(t, 2, s.PresentToday)
	assert.Equal(t, 1, s.LateToday)
	assert.Equal(t, 1, s.Chart.OnTime)
	assert.Equal(t, 1, s.Chart.Late)
	assert.Equal(t, 1, s.Chart.Absent)
}

func TestSummarizeCheckedOutCountsPresent(t *testing.T) {
	w := summarizeWindows(t)
	roster := rosterOf("A")

	rec := recordAt("A", "10:00") // late arrival
	logout := time.Date(2025, 6, 2, 16, 30, 0, 0, time.UTC)
	rec.LogoutTime = &logout
	rec.Status = attendance.StatusLeft

	s := Summarize(roster, []attendance.Record{rec}, w)

	// Checked out supersedes the late login; still present, not late.
	assert.Equal(t, 1, s.PresentToday)
	assert.Equal(t, 0, s.LateToday)
	assert.Equal(t, 1, s.Chart.LeftOnTime)
	assert.Empty(t, s.Absentees)
}

func TestSummarizeAbsenteesByIdentityNotStatus(t *testing.T) {
	w := summarizeWindows(t)
	roster := rosterOf("A", "B")

	// A scanned in but the derived status would be late; they are still not
	// an absentee because a record exists.
	records := []attendance.Record{recordAt("A", "12:00")}

	s := Summarize(roster, records, w)
	require.Len(t, s.Absentees, 1)
	assert.Equal(t, "B", s.Absentees[0].RollNumber)
}
