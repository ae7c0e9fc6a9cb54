package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/sysconfig"
	"github.com/campuslabs/monitoria-backend-go/internal/handler/http/response"
)

type ConfigHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetByClave(w http.ResponseWriter, r *http.Request)
	UpdateByID(w http.ResponseWriter, r *http.Request)
	UpdateByClave(w http.ResponseWriter, r *http.Request)
	DeleteByID(w http.ResponseWriter, r *http.Request)
	DeleteByClave(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Initialize(w http.ResponseWriter, r *http.Request)
}

type ConfigHandlerImpl struct {
	configService sysconfig.ConfigService
}

func NewConfigHandler(configService sysconfig.ConfigService) ConfigHandler {
	return &ConfigHandlerImpl{configService: configService}
}

// Create implements ConfigHandler.
func (h *ConfigHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq sysconfig.CreateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create configuration decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.configService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create configuration service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Configuration created", "clave", created.Clave)
	response.Created(w, "Configuration created successfully", created)
}

// GetByID implements ConfigHandler.
func (h *ConfigHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.configService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// GetByClave implements ConfigHandler.
func (h *ConfigHandlerImpl) GetByClave(w http.ResponseWriter, r *http.Request) {
	found, err := h.configService.GetByClave(r.Context(), chi.URLParam(r, "clave"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// UpdateByID implements ConfigHandler.
func (h *ConfigHandlerImpl) UpdateByID(w http.ResponseWriter, r *http.Request) {
	var updateReq sysconfig.UpdateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update configuration decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.configService.UpdateByID(r.Context(), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		slog.Error("Update configuration service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// UpdateByClave implements ConfigHandler.
func (h *ConfigHandlerImpl) UpdateByClave(w http.ResponseWriter, r *http.Request) {
	var updateReq sysconfig.UpdateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update configuration decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.configService.UpdateByClave(r.Context(), chi.URLParam(r, "clave"), updateReq)
	if err != nil {
		slog.Error("Update configuration service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// DeleteByID implements ConfigHandler.
func (h *ConfigHandlerImpl) DeleteByID(w http.ResponseWriter, r *http.Request) {
	if err := h.configService.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configuration deleted successfully", nil)
}

// DeleteByClave implements ConfigHandler.
func (h *ConfigHandlerImpl) DeleteByClave(w http.ResponseWriter, r *http.Request) {
	if err := h.configService.DeleteByClave(r.Context(), chi.URLParam(r, "clave")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configuration deleted successfully", nil)
}

// List implements ConfigHandler.
func (h *ConfigHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.List(r.Context())
	if err != nil {
		slog.Error("List configurations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Initialize implements ConfigHandler.
func (h *ConfigHandlerImpl) Initialize(w http.ResponseWriter, r *http.Request) {
	result, err := h.configService.Initialize(r.Context())
	if err != nil {
		slog.Error("Initialize configurations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Default configurations initialized", "creadas", len(result.ClavesCreadas), "existentes", len(result.ClavesExistentes))
	response.SuccessWithMessage(w, result.Mensaje, result)
}
