package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/leavedesk/leavedesk-backend-go/internal/domain/holiday"
	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/response"
	holidayService "github.com/leavedesk/leavedesk-backend-go/internal/service/holiday"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Seed(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService *holidayService.Service
}

func NewHolidayHandler(svc *holidayService.Service) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: svc}
}

func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var dto holiday.CreateHolidayDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if errs := dto.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	created, err := h.holidayService.Create(r.Context(), dto)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", created.ToResponse())
}

func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var year *int
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2000 || n > 2200 {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = &n
	}

	holidays, err := h.holidayService.List(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]holiday.HolidayResponse, len(holidays))
	for i := range holidays {
		out[i] = holidays[i].ToResponse()
	}

	response.Success(w, out)
}

func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

func (h *HolidayHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	added, err := h.holidayService.SeedDefaults(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default holidays seeded", map[string]int{"added": added})
}
