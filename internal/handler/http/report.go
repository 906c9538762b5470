package http

import (
	"net/http"

	"github.com/leavedesk/leavedesk-backend-go/internal/handler/http/response"
	reportService "github.com/leavedesk/leavedesk-backend-go/internal/service/report"
)

type ReportHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService *reportService.Service
}

func NewReportHandler(svc *reportService.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: svc}
}

func (h *ReportHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(w, r)
	if !ok {
		return
	}

	overview, err := h.reportService.Overview(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
