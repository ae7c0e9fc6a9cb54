package schedule

import (
	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/validator"
)

type SlotRequest struct {
	DiaSemana *int   `json:"dia_semana"`
	Jornada   string `json:"jornada"`
	Sede      string `json:"sede"`
}

func (r *SlotRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DiaSemana == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "dia_semana",
			Message: "dia_semana is required",
		})
	} else if *r.DiaSemana < 0 || *r.DiaSemana > 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "dia_semana",
			Message: "dia_semana must be between 0 and 6",
		})
	}

	if !validator.IsInSlice(r.Jornada, []string{"M", "T"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "jornada",
			Message: "jornada must be 'M' or 'T'",
		})
	}

	if !validator.IsInSlice(r.Sede, []string{"SA", "BA"}) {
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

// BulkSlotsRequest carries up to 50 slots for the bulk create/replace endpoints.
// Per-item validation happens inside the service so one bad item does not
// abort the batch.
type BulkSlotsRequest struct {
	Horarios []SlotRequest `json:"horarios"`
}

func (r *BulkSlotsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Horarios) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "horarios",
			Message: "horarios must contain at least one item",
		})
	}
	if len(r.Horarios) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "horarios",
			Message: "horarios must not exceed 50 items per request",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SlotResponse struct {
	ID               string             `json:"id"`
	Usuario          *user.UserResponse `json:"usuario,omitempty"`
	DiaSemana        int                `json:"dia_semana"`
	DiaSemanaDisplay string             `json:"dia_semana_display"`
	Jornada          string             `json:"jornada"`
	JornadaDisplay   string             `json:"jornada_display"`
	Sede             string             `json:"sede"`
	SedeDisplay      string             `json:"sede_display"`
}

func ToResponse(s ScheduleSlot) SlotResponse {
	resp := SlotResponse{
		ID:               s.ID,
		DiaSemana:        s.DiaSemana,
		DiaSemanaDisplay: DiaSemanaDisplay(s.DiaSemana),
		Jornada:          string(s.Jornada),
		JornadaDisplay:   s.Jornada.Display(),
		Sede:             string(s.Sede),
		SedeDisplay:      s.Sede.Display(),
	}
	if s.Username != nil && s.Nombre != nil {
		resp.Usuario = &user.UserResponse{
			ID:          s.UserID,
			Username:    *s.Username,
			Nombre:      *s.Nombre,
			TipoUsuario: string(user.RoleMonitor),
		}
	}
	return resp
}

// BulkResult is the multi-status outcome of a bulk slot operation: every
// requested item is either created or reported in Errores, never silently
// dropped and never aborting the rest of the batch.
type BulkResult struct {
	Mensaje          string         `json:"mensaje"`
	HorariosCreados  []SlotResponse `json:"horarios_creados"`
	TotalSolicitados int            `json:"total_solicitados"`
	TotalCreados     int            `json:"total_creados"`
	Errores          []string       `json:"errores,omitempty"`
}

// ReplaceResult extends BulkResult with the count of slots the replace
// operation removed before inserting the new set.
type ReplaceResult struct {
	Mensaje            string         `json:"mensaje"`
	HorariosEliminados int            `json:"horarios_eliminados"`
	HorariosCreados    []SlotResponse `json:"horarios_creados"`
	TotalSolicitados   int            `json:"total_solicitados"`
	TotalCreados       int            `json:"total_creados"`
	Errores            []string       `json:"errores,omitempty"`
}

// DirectivoSlotFilter narrows the cross-user slot listing.
type DirectivoSlotFilter struct {
	UsuarioID *string
	DiaSemana *int
	Jornada   *string
	Sede      *string
}

func (f *DirectivoSlotFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.UsuarioID != nil && !validator.IsValidUUID(*f.UsuarioID) {
		errs = append(errs, validator.ValidationError{
			Field:   "usuario_id",
			Message: "usuario_id must be a valid UUID",
		})
	}
	if f.DiaSemana != nil && (*f.DiaSemana < 0 || *f.DiaSemana > 6) {
		errs = append(errs, validator.ValidationError{
			Field:   "dia_semana",
			Message: "dia_semana must be between 0 and 6",
		})
	}
	if f.Jornada != nil && !validator.IsInSlice(*f.Jornada, []string{"M", "T"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "jornada",
			Message: "jornada must be 'M' or 'T'",
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

type DirectivoSlotsResponse struct {
	TotalHorarios  int            `json:"total_horarios"`
	TotalMonitores int            `json:"total_monitores"`
	Horarios       []SlotResponse `json:"horarios"`
}
