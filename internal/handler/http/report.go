package http

import (
	"log/slog"
	"net/http"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/report"
	"github.com/campuslabs/monitoria-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Hours(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Hours implements ReportHandler.
func (h *ReportHandlerImpl) Hours(w http.ResponseWriter, r *http.Request) {
	filter := report.HoursFilter{}
	q := r.URL.Query()

	if v := q.Get("monitor_id"); v != "" {
		filter.MonitorID = &v
	}
	if v := q.Get("fecha_inicio"); v != "" {
		filter.FechaInicio = &v
	}
	if v := q.Get("fecha_fin"); v != "" {
		filter.FechaFin = &v
	}

	result, err := h.reportService.Hours(r.Context(), filter)
	if err != nil {
		slog.Error("Hours report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
