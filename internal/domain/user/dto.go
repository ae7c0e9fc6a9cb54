package user

import "github.com/campuslabs/monitoria-backend-go/internal/pkg/validator"

type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Nombre      string `json:"nombre"`
	TipoUsuario string `json:"tipo_usuario"`
	Autorizado  bool   `json:"autorizado"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Nombre:      u.Nombre,
		TipoUsuario: string(u.Role),
		Autorizado:  u.Autorizado,
	}
}

// AuthorizeMonitorRequest flips a monitor's autorizado flag. Only a DIRECTIVO
// actor may issue it; the actor comes from the token, never from a table scan.
type AuthorizeMonitorRequest struct {
	MonitorID  string `json:"monitor_id"`
	Autorizado bool   `json:"autorizado"`
}

func (r *AuthorizeMonitorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.MonitorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "monitor_id",
			Message: "monitor_id is required",
		})
	} else if !validator.IsValidUUID(r.MonitorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "monitor_id",
			Message: "monitor_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListMonitorsResponse struct {
	TotalMonitores int            `json:"total_monitores"`
	Monitores      []UserResponse `json:"monitores"`
}
