package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	Current(w http.ResponseWriter, r *http.Request)
	ListMonitors(w http.ResponseWriter, r *http.Request)
	AuthorizeMonitor(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{userService: userService}
}

// Current implements UserHandler.
func (h *UserHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	profile, err := h.userService.Current(r.Context())
	if err != nil {
		slog.Error("Current user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}

// ListMonitors implements UserHandler.
func (h *UserHandlerImpl) ListMonitors(w http.ResponseWriter, r *http.Request) {
	monitors, err := h.userService.ListMonitors(r.Context())
	if err != nil {
		slog.Error("ListMonitors service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, monitors)
}

// AuthorizeMonitor implements UserHandler.
func (h *UserHandlerImpl) AuthorizeMonitor(w http.ResponseWriter, r *http.Request) {
	var authorizeReq user.AuthorizeMonitorRequest

	if err := json.NewDecoder(r.Body).Decode(&authorizeReq); err != nil {
		slog.Error("AuthorizeMonitor decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.userService.AuthorizeMonitor(r.Context(), authorizeReq)
	if err != nil {
		slog.Error("AuthorizeMonitor service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Monitor authorization updated", "monitor_id", authorizeReq.MonitorID, "autorizado", authorizeReq.Autorizado)
	response.Success(w, updated)
}
