package http

import (
	"encoding/json"
	"net/http"

	"github.com/sweldo-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/sweldo-hr/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	UpsertSummary(w http.ResponseWriter, r *http.Request)
	ListByCutoff(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) UpsertSummary(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.UpsertSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *attendanceHandlerImpl) ListByCutoff(w http.ResponseWriter, r *http.Request) {
	cutoffDate := r.URL.Query().Get("cutoff_date")
	if cutoffDate == "" {
		response.BadRequest(w, "cutoff_date is required", nil)
		return
	}

	result, err := h.attendanceService.ListByCutoff(r.Context(), cutoffDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
