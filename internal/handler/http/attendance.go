package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/attendash/attendance-backend-go/internal/domain/attendance"
	"github.com/attendash/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Scan(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Scan implements AttendanceHandler. This is the endpoint the fingerprint
// device posts to; the scan time is the server receipt time because the
// device has no clock worth trusting.
func (h *attendanceHandlerImpl) Scan(w http.ResponseWriter, r *http.Request) {
	var req attendance.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ScannedAt = time.Now()

	result, err := h.attendanceService.HandleScan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Outcome == attendance.OutcomeCreated {
		response.Created(w, "Login recorded", result)
		return
	}
	response.SuccessWithMessage(w, "Logout recorded", result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.RecordFilter{}

	if rollNumber := r.URL.Query().Get("rollno"); rollNumber != "" {
		filter.RollNumber = &rollNumber
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}
	if page := r.URL.Query().Get("page"); page != "" {
		filter.Page, _ = strconv.Atoi(page)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		filter.Limit, _ = strconv.Atoi(limit)
	}

	result, err := h.attendanceService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}
