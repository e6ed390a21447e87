package dashboard

import (
	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/domain/employee"
	"github.com/attendash/attendance-backend-go/internal/domain/settings"
)

// Summary is the aggregate over one day's records against the full roster.
// present + absent always equals total.
type Summary struct {
	TotalEmployees int
	PresentToday   int
	AbsentToday    int
	LateToday      int
	Chart          ChartBreakdown
	Absentees      []employee.Employee
}

// Summarize computes the daily aggregate. Presence is decided by record
// existence, not by derived status: anyone with a record today is present in
// the counts, and the absentee list is the roster complement by roll number.
// O(len(roster) + len(records)) via a roll-number keyed map. Callers must
// recompute on every read; nothing here may be cached across settings
// changes.
func Summarize(roster []employee.Employee, records []attendance.Record, w settings.TimeWindows) Summary {
	byRoll := make(map[string]*attendance.Record, len(records))
	for i := range records {
		byRoll[records[i].RollNumber] = &records[i]
	}

	s := Summary{TotalEmployees: len(roster)}

	for _, emp := range roster {
		rec := byRoll[emp.RollNumber]
		switch attendance.ClassifyDay(rec, w) {
		case attendance.DayAbsent:
			s.AbsentToday++
			s.Chart.Absent++
		case attendance.DayLate:
			s.PresentToday++
			s.LateToday++
			s.Chart.Late++
		case attendance.DayLeftOnTime:
			s.PresentToday++
			s.Chart.LeftOnTime++
		case attendance.DayLeftEarly:
			s.PresentToday++
			s.Chart.LeftEarly++
		default:
			s.PresentToday++
			s.Chart.OnTime++
		}

		if rec == nil {
			s.Absentees = append(s.Absentees, emp)
		}
	}

	return s
}
