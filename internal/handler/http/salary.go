package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/middleware"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/response"
	salaryService "github.com/leavedesk/leavedesk-backend-go/internal/service/salary"
)

type SalaryHandler interface {
	GetMyStatement(w http.ResponseWriter, r *http.Request)
	GetEmployeeStatement(w http.ResponseWriter, r *http.Request)
	GetAllStatements(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService *salaryService.Service
}

func NewSalaryHandler(svc *salaryService.Service) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: svc}
}

func (h *SalaryHandlerImpl) GetMyStatement(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	statement, err := h.salaryService.GetStatement(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, statement)
}

func (h *SalaryHandlerImpl) GetEmployeeStatement(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	statement, err := h.salaryService.GetStatement(r.Context(), employeeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, statement)
}

func (h *SalaryHandlerImpl) GetAllStatements(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	limit := 20
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	statements, total, err := h.salaryService.GetAll(r.Context(), year, month, limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, statements, &response.Meta{
		Limit:      limit,
		Offset:     offset,
		TotalItems: total,
	})
}

// parseYearMonth reads year and month query params, defaulting to the
// current month. Month is 1-indexed.
func parseYearMonth(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()

	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2200 {
			response.BadRequest(w, "Invalid year", nil)
			return 0, 0, false
		}
		year = n
	}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			response.BadRequest(w, "Invalid month, expected 1-12", nil)
			return 0, 0, false
		}
		month = time.Month(n)
	}

	return year, month, true
}
