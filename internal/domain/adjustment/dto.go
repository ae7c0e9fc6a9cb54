package adjustment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/campuslabs/monitoria-backend-go/internal/pkg/validator"
)

type CreateAdjustmentRequest struct {
	MonitorID     string          `json:"monitor_id"`
	Fecha         string          `json:"fecha"`
	CantidadHoras decimal.Decimal `json:"cantidad_horas"`
	Motivo        string          `json:"motivo"`
}

func (r *CreateAdjustmentRequest) Validate() error {
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

	if r.CantidadHoras.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "cantidad_horas",
			Message: "cantidad_horas must not be zero",
		})
	} else if r.CantidadHoras.Abs().GreaterThan(decimal.NewFromInt(24)) {
		errs = append(errs, validator.ValidationError{
			Field:   "cantidad_horas",
			Message: "cantidad_horas must not exceed 24 hours in either direction",
		})
	}

	if validator.IsEmpty(r.Motivo) {
		errs = append(errs, validator.ValidationError{
			Field:   "motivo",
			Message: "motivo is required",
		})
	} else if len(r.Motivo) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "motivo",
			Message: "motivo must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdjustmentFilter narrows the adjustment listing. Nil or unparseable dates
// fall back to the last 30 days.
type AdjustmentFilter struct {
	MonitorID   *string
	FechaInicio *string
	FechaFin    *string
}

func (f *AdjustmentFilter) Validate() error {
	if f.MonitorID != nil && !validator.IsValidUUID(*f.MonitorID) {
		return validator.ValidationErrors{{
			Field:   "monitor_id",
			Message: "monitor_id must be a valid UUID",
		}}
	}
	return nil
}

// Resolve returns the effective date range, defaulting each bound to the
// today−30d .. today window when missing or malformed.
func (f *AdjustmentFilter) Resolve(now time.Time) (time.Time, time.Time) {
	inicio := now.AddDate(0, 0, -30)
	fin := now
	if f.FechaInicio != nil {
		if t, err := time.Parse("2006-01-02", *f.FechaInicio); err == nil {
			inicio = t
		}
	}
	if f.FechaFin != nil {
		if t, err := time.Parse("2006-01-02", *f.FechaFin); err == nil {
			fin = t
		}
	}
	return inicio, fin
}

type AdjustmentResponse struct {
	ID            string          `json:"id"`
	MonitorID     string          `json:"monitor_id"`
	Monitor       *MonitorSummary `json:"monitor,omitempty"`
	Fecha         string          `json:"fecha"`
	CantidadHoras decimal.Decimal `json:"cantidad_horas"`
	Motivo        string          `json:"motivo"`
	CreadoPor     string          `json:"creado_por"`
	CreadorNombre *string         `json:"creado_por_nombre,omitempty"`
	CreadoEn      string          `json:"creado_en"`
}

type MonitorSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
}

func ToResponse(a Adjustment) AdjustmentResponse {
	resp := AdjustmentResponse{
		ID:            a.ID,
		MonitorID:     a.MonitorID,
		Fecha:         a.Fecha.Format("2006-01-02"),
		CantidadHoras: a.CantidadHoras,
		Motivo:        a.Motivo,
		CreadoPor:     a.CreadoPor,
		CreadorNombre: a.CreadorNombre,
		CreadoEn:      a.CreatedAt.Format(time.RFC3339),
	}
	if a.MonitorUsername != nil && a.MonitorNombre != nil {
		resp.Monitor = &MonitorSummary{
			ID:       a.MonitorID,
			Username: *a.MonitorUsername,
			Nombre:   *a.MonitorNombre,
		}
	}
	return resp
}

type ListAdjustmentsResponse struct {
	TotalAjustes        int                  `json:"total_ajustes"`
	TotalHorasAjustadas decimal.Decimal      `json:"total_horas_ajustadas"`
	MonitoresAfectados  int                  `json:"monitores_afectados"`
	Periodo             Periodo              `json:"periodo"`
	Ajustes             []AdjustmentResponse `json:"ajustes"`
}

type Periodo struct {
	FechaInicio string `json:"fecha_inicio"`
	FechaFin    string `json:"fecha_fin"`
}
