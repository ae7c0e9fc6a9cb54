package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/schedule"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	HorarioID string          `json:"horario_id"`
	Fecha     string          `json:"fecha"`
	Presente  *bool           `json:"presente"`
	Horas     decimal.Decimal `json:"horas"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.HorarioID) {
		errs = append(errs, validator.ValidationError{
			Field:   "horario_id",
			Message: "horario_id is required",
		})
	} else if !validator.IsValidUUID(r.HorarioID) {
		errs = append(errs, validator.ValidationError{
			Field:   "horario_id",
			Message: "horario_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Fecha) {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha is required",
		})
	} else if _, ok := validator.IsValidDate(r.Fecha); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "fecha",
			Message: "fecha must use the YYYY-MM-DD format",
		})
	}

	if r.Presente == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "presente",
			Message: "presente is required",
		})
	}

	if r.Horas.IsNegative() || r.Horas.GreaterThan(decimal.NewFromInt(24)) {
		errs = append(errs, validator.ValidationError{
			Field:   "horas",
			Message: "horas must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest patches an owned record. Only presence and hours
// are owner-editable; the authorization state moves exclusively through the
// directivo authorize endpoint.
type UpdateAttendanceRequest struct {
	Presente *bool            `json:"presente"`
	Horas    *decimal.Decimal `json:"horas"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Presente == nil && r.Horas == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of presente or horas is required",
		})
	}

	if r.Horas != nil && (r.Horas.IsNegative() || r.Horas.GreaterThan(decimal.NewFromInt(24))) {
		errs = append(errs, validator.ValidationError{
			Field:   "horas",
			Message: "horas must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AuthorizeAttendanceRequest struct {
	Estado string `json:"estado_autorizacion"`
}

func (r *AuthorizeAttendanceRequest) Validate() error {
	switch Estado(r.Estado) {
	case EstadoPendiente, EstadoAutorizado, EstadoRechazado:
		return nil
	}
	return ErrInvalidStatus
}

// AttendanceFilter narrows the owner listing; the directivo listing reuses it
// with UsuarioID and Sede populated from query params.
type AttendanceFilter struct {
	FechaInicio *string
	FechaFin    *string
	Estado      *string
	HorarioID   *string
	UsuarioID   *string
	Sede        *string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.FechaInicio != nil {
		if _, ok := validator.IsValidDate(*f.FechaInicio); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_inicio",
				Message: "fecha_inicio must use the YYYY-MM-DD format",
			})
		}
	}
	if f.FechaFin != nil {
		if _, ok := validator.IsValidDate(*f.FechaFin); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "fecha_fin",
				Message: "fecha_fin must use the YYYY-MM-DD format",
			})
		}
	}
	if f.Estado != nil && !validator.IsInSlice(*f.Estado, []string{
		string(EstadoPendiente), string(EstadoAutorizado), string(EstadoRechazado),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "estado",
			Message: "estado must be one of 'pendiente', 'autorizado' or 'rechazado'",
		})
	}
	if f.HorarioID != nil && !validator.IsValidUUID(*f.HorarioID) {
		errs = append(errs, validator.ValidationError{
			Field:   "horario_id",
			Message: "horario_id must be a valid UUID",
		})
	}
	if f.UsuarioID != nil && !validator.IsValidUUID(*f.UsuarioID) {
		errs = append(errs, validator.ValidationError{
			Field:   "usuario_id",
			Message: "usuario_id must be a valid UUID",
		})
	}
	if f.Sede != nil && !validator.IsInSlice(*f.Sede, []string{"SA", "BA"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sede",
			Message: "sede must be 'SA' or 'BA'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID            string                 `json:"id"`
	UsuarioID     string                 `json:"usuario_id"`
	Usuario       *UsuarioSummary        `json:"usuario,omitempty"`
	Horario       *schedule.SlotResponse `json:"horario,omitempty"`
	HorarioID     *string                `json:"horario_id"`
	Fecha         string                 `json:"fecha"`
	Presente      bool                   `json:"presente"`
	Horas         decimal.Decimal        `json:"horas"`
	Estado        string                 `json:"estado_autorizacion"`
	EstadoDisplay string                 `json:"estado_autorizacion_display"`
}

type UsuarioSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		UsuarioID:     a.UserID,
		HorarioID:     a.SlotID,
		Fecha:         a.Fecha.Format("2006-01-02"),
		Presente:      a.Presente,
		Horas:         a.Horas,
		Estado:        string(a.Estado),
		EstadoDisplay: a.Estado.Display(),
	}
	if a.Username != nil && a.Nombre != nil {
		resp.Usuario = &UsuarioSummary{
			ID:       a.UserID,
			Username: *a.Username,
			Nombre:   *a.Nombre,
		}
	}
	if a.SlotID != nil && a.SlotDiaSemana != nil && a.SlotJornada != nil && a.SlotSede != nil {
		slot := schedule.ScheduleSlot{
			ID:        *a.SlotID,
			UserID:    a.UserID,
			DiaSemana: *a.SlotDiaSemana,
			Jornada:   schedule.Jornada(*a.SlotJornada),
			Sede:      schedule.Sede(*a.SlotSede),
		}
		horario := schedule.ToResponse(slot)
		resp.Horario = &horario
	}
	return resp
}

type ListAttendancesResponse struct {
	TotalAsistencias int                  `json:"total_asistencias"`
	TotalHoras       decimal.Decimal      `json:"total_horas"`
	Asistencias      []AttendanceResponse `json:"asistencias"`
}

type DirectivoAttendancesResponse struct {
	TotalAsistencias   int                  `json:"total_asistencias"`
	TotalHoras         decimal.Decimal      `json:"total_horas"`
	MonitoresDistintos int                  `json:"monitores_distintos"`
	Asistencias        []AttendanceResponse `json:"asistencias"`
}
