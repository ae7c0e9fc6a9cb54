package report

import (
	"github.com/shopspring/decimal"

	"github.com/campuslabs/monitoria-backend-go/internal/pkg/validator"
)

// HoursFilter narrows the hour report. Nil dates mean no bound on that side.
type HoursFilter struct {
	MonitorID   *string
	FechaInicio *string
	FechaFin    *string
}

func (f *HoursFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.MonitorID != nil && !validator.IsValidUUID(*f.MonitorID) {
		errs = append(errs, validator.ValidationError{
			Field:   "monitor_id",
			Message: "monitor_id must be a valid UUID",
		})
	}
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MonitorHours is one monitor's aggregated balance: authorized attendance
// hours plus manual adjustments, and the resulting pay when costo_por_hora
// is configured.
type MonitorHours struct {
	MonitorID        string           `json:"monitor_id"`
	Username         string           `json:"username"`
	Nombre           string           `json:"nombre"`
	HorasAutorizadas decimal.Decimal  `json:"horas_autorizadas"`
	HorasAjustadas   decimal.Decimal  `json:"horas_ajustadas"`
	TotalHoras       decimal.Decimal  `json:"total_horas"`
	PagoTotal        *decimal.Decimal `json:"pago_total,omitempty"`
}

type HoursReportResponse struct {
	TotalMonitores int              `json:"total_monitores"`
	TotalHoras     decimal.Decimal  `json:"total_horas"`
	CostoPorHora   *decimal.Decimal `json:"costo_por_hora,omitempty"`
	Monitores      []MonitorHours   `json:"monitores"`
}
