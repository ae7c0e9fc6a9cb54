package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/attendance"
	"github.com/campuslabs/monitoria-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Authorize(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func attendanceFilterFromQuery(r *http.Request) attendance.AttendanceFilter {
	filter := attendance.AttendanceFilter{}
	q := r.URL.Query()

	if v := q.Get("fecha_inicio"); v != "" {
		filter.FechaInicio = &v
	}
	if v := q.Get("fecha_fin"); v != "" {
		filter.FechaFin = &v
	}
	if v := q.Get("estado"); v != "" {
		filter.Estado = &v
	}
	if v := q.Get("horario_id"); v != "" {
		filter.HorarioID = &v
	}
	if v := q.Get("usuario_id"); v != "" {
		filter.UsuarioID = &v
	}
	if v := q.Get("sede"); v != "" {
		filter.Sede = &v
	}

	return filter
}

// Create implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq attendance.CreateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created successfully", created)
}

// Get implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Update implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.attendanceService.Update(r.Context(), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted successfully", nil)
}

// ListOwn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListOwn(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		slog.Error("ListOwn attendances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.ListAll(r.Context(), attendanceFilterFromQuery(r))
	if err != nil {
		slog.Error("ListAll attendances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Authorize implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Authorize(w http.ResponseWriter, r *http.Request) {
	var authorizeReq attendance.AuthorizeAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&authorizeReq); err != nil {
		slog.Error("Authorize attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.attendanceService.Authorize(r.Context(), chi.URLParam(r, "id"), authorizeReq)
	if err != nil {
		slog.Error("Authorize attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance authorization updated", "attendance_id", updated.ID, "estado", updated.Estado)
	response.Success(w, updated)
}
