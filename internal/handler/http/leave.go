package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/middleware"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/response"
	leaveService "github.com/leavedesk/leavedesk-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
	GetMyBalances(w http.ResponseWriter, r *http.Request)
	GetEmployeeBalances(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService *leaveService.Service
}

func NewLeaveHandler(svc *leaveService.Service) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: svc}
}

func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var dto leave.CreateLeaveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		slog.Error("CreateRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	request, err := h.leaveService.CreateRequest(r.Context(), employeeID, dto)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", request.ToResponse())
}

func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	request, err := h.leaveService.GetRequest(r.Context(), requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, request.ToResponse())
}

func (h *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	filter := parseListFilter(r)
	filter.EmployeeID = &employeeID

	h.listAndRespond(w, r, filter)
}

func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := parseListFilter(r)
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	h.listAndRespond(w, r, filter)
}

func (h *LeaveHandlerImpl) listAndRespond(w http.ResponseWriter, r *http.Request, filter leave.ListLeaveRequestsFilter) {
	requests, total, err := h.leaveService.ListRequests(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]leave.LeaveRequestResponse, len(requests))
	for i := range requests {
		out[i] = requests[i].ToResponse()
	}

	response.SuccessWithMeta(w, out, &response.Meta{
		Limit:      filter.Limit,
		Offset:     filter.Offset,
		TotalItems: total,
	})
}

func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	request, err := h.leaveService.Approve(r.Context(), requestID, reviewerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", request.ToResponse())
}

func (h *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var dto leave.RejectLeaveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	request, err := h.leaveService.Reject(r.Context(), requestID, reviewerID, dto.Reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", request.ToResponse())
}

func (h *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	// Cancellation reason is optional; an empty body is acceptable.
	var dto leave.CancelLeaveRequestDTO
	_ = json.NewDecoder(r.Body).Decode(&dto)

	var reason *string
	if dto.Reason != "" {
		reason = &dto.Reason
	}

	request, err := h.leaveService.Cancel(r.Context(), requestID, employeeID, reason)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", request.ToResponse())
}

func (h *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	h.respondBalances(w, r, employeeID)
}

func (h *LeaveHandlerImpl) GetEmployeeBalances(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	h.respondBalances(w, r, employeeID)
}

func (h *LeaveHandlerImpl) respondBalances(w http.ResponseWriter, r *http.Request, employeeID string) {
	balances, err := h.leaveService.GetBalances(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances.ToMap())
}

// ListTypes returns the closed set of leave types.
func (h *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types := leave.AllTypes()
	out := make([]map[string]string, len(types))
	for i, t := range types {
		out[i] = map[string]string{
			"code": string(t),
			"name": t.Name(),
		}
	}
	response.Success(w, out)
}

func parseListFilter(r *http.Request) leave.ListLeaveRequestsFilter {
	q := r.URL.Query()

	filter := leave.ListLeaveRequestsFilter{
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
	if v := q.Get("status"); v != "" {
		status := leave.Status(v)
		filter.Status = &status
	}
	if v := q.Get("type"); v != "" {
		if t, err := leave.ParseType(v); err == nil {
			filter.Type = &t
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
