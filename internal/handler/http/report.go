package http

import (
	"net/http"

	"github.com/attendash/attendance-backend-go/internal/domain/report"
	"github.com/attendash/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	filter := report.DailyReportFilter{
		Date:   r.URL.Query().Get("date"),
		Search: r.URL.Query().Get("search"),
	}

	result, err := h.reportService.GetDailyReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
