package sysconfig

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/sysconfig"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

// defaultEntries are the keys the initialize endpoint seeds. Values live in
// the database afterwards; these are only the bootstrap defaults.
var defaultEntries = []sysconfig.ConfigEntry{
	{
		Clave:       "costo_por_hora",
		Valor:       "9965",
		TipoDato:    sysconfig.TipoDecimal,
		Descripcion: "Valor pagado por cada hora de monitoria",
	},
	{
		Clave:       "semanas_semestre",
		Valor:       "14",
		TipoDato:    sysconfig.TipoEntero,
		Descripcion: "Numero de semanas habiles del semestre",
	},
}

type ConfigServiceImpl struct {
	db *database.DB
	sysconfig.ConfigRepository
}

func NewConfigService(db *database.DB, configRepository sysconfig.ConfigRepository) sysconfig.ConfigService {
	return &ConfigServiceImpl{
		db:               db,
		ConfigRepository: configRepository,
	}
}

func actorID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return id, nil
}

// Create implements sysconfig.ConfigService.
func (s *ConfigServiceImpl) Create(ctx context.Context, req sysconfig.CreateConfigRequest) (sysconfig.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return sysconfig.ConfigResponse{}, err
	}

	creator, err := actorID(ctx)
	if err != nil {
		return sysconfig.ConfigResponse{}, err
	}

	created, err := s.ConfigRepository.Create(ctx, sysconfig.ConfigEntry{
		Clave:       req.Clave,
		Valor:       req.Valor,
		TipoDato:    sysconfig.TipoDato(req.TipoDato),
		Descripcion: req.Descripcion,
		CreadoPor:   &creator,
	})
	if err != nil {
		return sysconfig.ConfigResponse{}, err
	}

	return sysconfig.ToResponse(created), nil
}

// GetByID implements sysconfig.ConfigService.
func (s *ConfigServiceImpl) GetByID(ctx context.Context, id string) (sysconfig.ConfigResponse, error) {
	found, err := s.ConfigRepository.GetByID(ctx, id)
	if err != nil {
		return sysconfig.ConfigResponse{}, err
	}
	return sysconfig.ToResponse(found), nil
}

// GetByClave implements sysconfig.ConfigService.
func (s *ConfigServiceImpl) GetByClave(ctx context.Context, clave string) (sysconfig.ConfigResponse, error) {
	found, err := s.ConfigRepository.GetByClave(ctx, clave)
	if err != nil {
		return sysconfig.ConfigResponse{}, err
	}
	return sysconfig.ToResponse(found), nil
}

func (s *ConfigServiceImpl) update(ctx context.Context, entry sysconfig.ConfigEntry, req sysconfig.UpdateConfigRequest) (sysconfig.ConfigResponse, error) {
	if req.Valor != nil {
		if !entry.TipoDato.ValidValue(*req.Valor) {
			return sysconfig.ConfigResponse{}, sysconfig.ErrValueTypeMismatch
		}
		entry.Valor = *req.Valor
	}
	if req.Descripcion != nil {
		entry.Descripcion = *req.Descripcion
	}

	updated, err := s.ConfigRepository.Update(ctx, entry)
	if err != nil {
		return sysconfig.ConfigResponse{}, err
	}
	return sysconfig.ToResponse(updated), nil
}

// UpdateByID implements sysconfig.ConfigService.
func (s *ConfigServiceImpl) UpdateByID(ctx context.Context, id string, req sysconfig.UpdateConfigRequest) (sysconfig.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return sysconfig.ConfigResponse{}, err
	}

	entry, err := s.ConfigRepository.GetByID(ctx, id)
	if err != nil {
		return sysconfig.ConfigResponse{}, err
	}
	return s.update(ctx, entry, req)
}

// UpdateByClave implements sysconfig.ConfigService.
func (s *ConfigServiceImpl) UpdateByClave(ctx context.Context, clave string, req sysconfig.UpdateConfigRequest) (sysconfig.ConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return sysconfig.ConfigResponse{}, err
	}

	entry, err := s.ConfigRepository.GetByClave(ctx, clave)
	if err != nil {
		return sysconfig.ConfigResponse{}, err
	}
	return s.update(ctx, entry, req)
}

// DeleteByID implements sysconfig.ConfigService.
func (s *ConfigServiceImpl) DeleteByID(ctx context.Context, id string) error {
	return s.ConfigRepository.DeleteByID(ctx, id)
}

// DeleteByClave implements sysconfig.ConfigService.
func (s *ConfigServiceImpl) DeleteByClave(ctx context.Context, clave string) error {
	return s.ConfigRepository.DeleteByClave(ctx, clave)
}

// List implements sysconfig.ConfigService.
func (s *ConfigServiceImpl) List(ctx context.Context) (sysconfig.ListConfigsResponse, error) {
	entries, err := s.ConfigRepository.List(ctx)
	if err != nil {
		return sysconfig.ListConfigsResponse{}, fmt.Errorf("failed to list configurations: %w", err)
	}

	responses := make([]sysconfig.ConfigResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, sysconfig.ToResponse(e))
	}

	return sysconfig.ListConfigsResponse{
		TotalConfiguraciones: len(responses),
		Configuraciones:      responses,
	}, nil
}

// Initialize implements sysconfig.ConfigService. Existing keys are left
// untouched, so re-running the seed never overwrites tuned values.
func (s *ConfigServiceImpl) Initialize(ctx context.Context) (sysconfig.InitializeResult, error) {
	creator, err := actorID(ctx)
	if err != nil {
		return sysconfig.InitializeResult{}, err
	}

	result := sysconfig.InitializeResult{
		ClavesCreadas:    []string{},
		ClavesExistentes: []string{},
	}

	for _, def := range defaultEntries {
		if _, err := s.ConfigRepository.GetByClave(ctx, def.Clave); err == nil {
			result.ClavesExistentes = append(result.ClavesExistentes, def.Clave)
			continue
		}

		entry := def
		entry.CreadoPor = &creator
		if _, err := s.ConfigRepository.Create(ctx, entry); err != nil {
			return sysconfig.InitializeResult{}, fmt.Errorf("failed to seed %s: %w", def.Clave, err)
		}
		result.ClavesCreadas = append(result.ClavesCreadas, def.Clave)
	}

	result.Mensaje = fmt.Sprintf("%d configuraciones creadas, %d ya existian",
		len(result.ClavesCreadas), len(result.ClavesExistentes))
	return result, nil
}
