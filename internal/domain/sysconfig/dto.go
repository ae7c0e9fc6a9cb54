package sysconfig

import (
	"strings"
	"time"

	"github.com/campuslabs/monitoria-backend-go/internal/pkg/validator"
)

type CreateConfigRequest struct {
	Clave       string `json:"clave"`
	Valor       string `json:"valor"`
	TipoDato    string `json:"tipo_dato"`
	Descripcion string `json:"descripcion"`
}

func (r *CreateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Clave = strings.ToLower(strings.TrimSpace(r.Clave))

	if validator.IsEmpty(r.Clave) {
		errs = append(errs, validator.ValidationError{
			Field:   "clave",
			Message: "clave is required",
		})
	} else if !validator.IsValidConfigKey(r.Clave) {
		errs = append(errs, validator.ValidationError{
			Field:   "clave",
			Message: "clave must contain only lowercase letters, digits and underscores",
		})
	}

	if validator.IsEmpty(r.Valor) {
		errs = append(errs, validator.ValidationError{
			Field:   "valor",
			Message: "valor is required",
		})
	}

	tipo := TipoDato(r.TipoDato)
	if !tipo.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "tipo_dato",
			Message: "tipo_dato must be one of 'decimal', 'entero', 'booleano' or 'texto'",
		})
	} else if !validator.IsEmpty(r.Valor) && !tipo.ValidValue(r.Valor) {
		errs = append(errs, validator.ValidationError{
			Field:   "valor",
			Message: "valor does not match the declared tipo_dato",
		})
	}

	if len(r.Descripcion) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "descripcion",
			Message: "descripcion must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateConfigRequest patches valor and descripcion. Neither clave nor
// tipo_dato are editable after creation.
type UpdateConfigRequest struct {
	Valor       *string `json:"valor"`
	Descripcion *string `json:"descripcion"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Valor == nil && r.Descripcion == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of valor or descripcion is required",
		})
	}
	if r.Valor != nil && validator.IsEmpty(*r.Valor) {
		errs = append(errs, validator.ValidationError{
			Field:   "valor",
			Message: "valor must not be empty",
		})
	}
	if r.Descripcion != nil && len(*r.Descripcion) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "descripcion",
			Message: "descripcion must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConfigResponse struct {
	ID            string  `json:"id"`
	Clave         string  `json:"clave"`
	Valor         string  `json:"valor"`
	ValorTipado   any     `json:"valor_tipado"`
	TipoDato      string  `json:"tipo_dato"`
	Descripcion   string  `json:"descripcion"`
	CreadoPor     *string `json:"creado_por,omitempty"`
	CreadoEn      string  `json:"creado_en"`
	ActualizadoEn string  `json:"actualizado_en"`
}

func ToResponse(e ConfigEntry) ConfigResponse {
	return ConfigResponse{
		ID:            e.ID,
		Clave:         e.Clave,
		Valor:         e.Valor,
		ValorTipado:   e.Decode(),
		TipoDato:      string(e.TipoDato),
		Descripcion:   e.Descripcion,
		CreadoPor:     e.CreadoPor,
		CreadoEn:      e.CreatedAt.Format(time.RFC3339),
		ActualizadoEn: e.UpdatedAt.Format(time.RFC3339),
	}
}

type ListConfigsResponse struct {
	TotalConfiguraciones int              `json:"total_configuraciones"`
	Configuraciones      []ConfigResponse `json:"configuraciones"`
}

// InitializeResult reports which default keys the seed created and which
// already existed. Seeding is idempotent.
type InitializeResult struct {
	Mensaje          string   `json:"mensaje"`
	ClavesCreadas    []string `json:"claves_creadas"`
	ClavesExistentes []string `json:"claves_existentes"`
}
