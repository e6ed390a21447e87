package report

import "context"

// Service produces historical attendance views for the reports page. Rows
// carry derived statuses so the export the frontend builds from them cannot
// disagree with the dashboard.
type Service interface {
	GetDailyReport(ctx context.Context, filter DailyReportFilter) (DailyReportResponse, error)
}
