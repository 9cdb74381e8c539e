package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/acss-labs/acss-backend-go/internal/domain/attendance"
	"github.com/acss-labs/acss-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Attendance mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	event, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		slog.Error("Attendance mark service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked", "staff_id", req.StaffID, "action", req.Action)
	response.Created(w, "Attendance marked", event)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := attendance.ListEventsFilter{
		Date:      q.Get("date"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		StaffID:   q.Get("staff_id"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	list, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("Attendance list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, list, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: int64(list.TotalCount),
		TotalPages: list.TotalPages,
	})
}

// Summary implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.attendanceService.Summary(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		slog.Error("Attendance summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
