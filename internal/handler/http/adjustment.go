package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/adjustment"
	"github.com/campuslabs/monitoria-backend-go/internal/handler/http/response"
)

type AdjustmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AdjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &AdjustmentHandlerImpl{adjustmentService: adjustmentService}
}

// Create implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq adjustment.CreateAdjustmentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create adjustment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.adjustmentService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create adjustment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Hour adjustment created", "monitor_id", createReq.MonitorID, "cantidad_horas", createReq.CantidadHoras)
	response.Created(w, "Hour adjustment created successfully", created)
}

// Get implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.adjustmentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Delete implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.adjustmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Hour adjustment deleted successfully", nil)
}

// List implements AdjustmentHandler.
func (h *AdjustmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := adjustment.AdjustmentFilter{}
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

	result, err := h.adjustmentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List adjustments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
