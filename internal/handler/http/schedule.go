package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/schedule"
	"github.com/campuslabs/monitoria-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	CreateBulk(w http.ResponseWriter, r *http.Request)
	ReplaceAll(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// Create implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var slotReq schedule.SlotRequest

	if err := json.NewDecoder(r.Body).Decode(&slotReq); err != nil {
		slog.Error("Create slot decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.scheduleService.Create(r.Context(), slotReq)
	if err != nil {
		slog.Error("Create slot service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule slot created successfully", created)
}

// Get implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	slot, err := h.scheduleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slot)
}

// Update implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var slotReq schedule.SlotRequest

	if err := json.NewDecoder(r.Body).Decode(&slotReq); err != nil {
		slog.Error("Update slot decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.scheduleService.Update(r.Context(), chi.URLParam(r, "id"), slotReq)
	if err != nil {
		slog.Error("Update slot service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements ScheduleHandler.
func (h *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule slot deleted successfully", nil)
}

// ListOwn implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	slots, err := h.scheduleService.ListOwn(r.Context())
	if err != nil {
		slog.Error("ListOwn slots service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, slots)
}

// CreateBulk implements ScheduleHandler. Returns 207 when some items failed.
func (h *ScheduleHandlerImpl) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var bulkReq schedule.BulkSlotsRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("CreateBulk decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.CreateBulk(r.Context(), bulkReq)
	if err != nil {
		slog.Error("CreateBulk service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if len(result.Errores) > 0 {
		response.MultiStatus(w, result.Mensaje, result)
		return
	}
	response.Created(w, result.Mensaje, result)
}

// ReplaceAll implements ScheduleHandler. Returns 207 when some items failed.
func (h *ScheduleHandlerImpl) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	var bulkReq schedule.BulkSlotsRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("ReplaceAll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.scheduleService.ReplaceAll(r.Context(), bulkReq)
	if err != nil {
		slog.Error("ReplaceAll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if len(result.Errores) > 0 {
		response.MultiStatus(w, result.Mensaje, result)
		return
	}
	response.SuccessWithMessage(w, result.Mensaje, result)
}

// ListAll implements ScheduleHandler.
func (h *ScheduleHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	filter := schedule.DirectivoSlotFilter{}
	q := r.URL.Query()

	if v := q.Get("usuario_id"); v != "" {
		filter.UsuarioID = &v
	}
	if v := q.Get("dia_semana"); v != "" {
		if dia, err := strconv.Atoi(v); err == nil {
			filter.DiaSemana = &dia
		} else {
			response.BadRequest(w, "dia_semana must be an integer", nil)
			return
		}
	}
	if v := q.Get("jornada"); v != "" {
		filter.Jornada = &v
	}
	if v := q.Get("sede"); v != "" {
		filter.Sede = &v
	}

	result, err := h.scheduleService.ListAll(r.Context(), filter)
	if err != nil {
		slog.Error("ListAll slots service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
