package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/attendance"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/middleware"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/response"
	attendanceService "github.com/leavedesk/leavedesk-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetTodayStatus(w http.ResponseWriter, r *http.Request)
	GetMyRecords(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService *attendanceService.Service
}

func NewAttendanceHandler(svc *attendanceService.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: svc}
}

func (h *AttendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clocked in", record.ToResponse())
}

func (h *AttendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out", record.ToResponse())
}

func (h *AttendanceHandlerImpl) GetTodayStatus(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	record, err := h.attendanceService.TodayStatus(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status := map[string]interface{}{
		"clocked_in":  record != nil,
		"clocked_out": record != nil && record.ClockOut != nil,
	}
	if record != nil {
		status["record"] = record.ToResponse()
	}

	response.Success(w, status)
}

func (h *AttendanceHandlerImpl) GetMyRecords(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	filter := parseAttendanceFilter(r)
	filter.EmployeeID = &employeeID

	h.listAndRespond(w, r, filter)
}

func (h *AttendanceHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	filter := parseAttendanceFilter(r)
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	h.listAndRespond(w, r, filter)
}

func (h *AttendanceHandlerImpl) listAndRespond(w http.ResponseWriter, r *http.Request, filter attendance.ListFilter) {
	records, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]attendance.RecordResponse, len(records))
	for i := range records {
		out[i] = records[i].ToResponse()
	}

	response.SuccessWithMeta(w, out, &response.Meta{
		Limit:      filter.Limit,
		Offset:     filter.Offset,
		TotalItems: total,
	})
}

func parseAttendanceFilter(r *http.Request) attendance.ListFilter {
	q := r.URL.Query()

	filter := attendance.ListFilter{
		Limit:  20,
		Offset: 0,
	}

	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}
	if v := q.Get("from"); v != "" {
		if t, err := time.ParseInLocation("2006-01-02", v, time.UTC); err == nil {
			filter.From = &t
		}
	}
	if v := q.Get("to"); v != "" {
		if t, err := time.ParseInLocation("2006-01-02", v, time.UTC); err == nil {
			filter.To = &t
		}
	}

	return filter
}
