package dashboard

import (
	"github.com/attendash/attendance-backend-go/internal/domain/employee"
)

// SummaryResponse feeds the dashboard cards and the pie chart.
type SummaryResponse struct {
	Date           string         `json:"date"`
	TotalEmployees int            `json:"total_employees"`
	PresentToday   int            `json:"present_today"`
	AbsentToday    int            `json:"absent_today"`
	LateToday      int            `json:"late_today"`
	Chart          ChartBreakdown `json:"chart"`
}

// ChartBreakdown is the finer per-status split for the chart segment.
type ChartBreakdown struct {
	OnTime     int `json:"on_time"`
	Late       int `json:"late"`
	LeftOnTime int `json:"left_on_time"`
	LeftEarly  int `json:"left_early"`
	Absent     int `json:"absent"`
}

type AbsenteesResponse struct {
	Date      string                      `json:"date"`
	Absentees []employee.EmployeeResponse `json:"absentees"`
}
