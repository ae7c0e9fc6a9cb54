package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/schedule"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
	"github.com/campuslabs/monitoria-backend-go/internal/repository/postgresql"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.ScheduleRepository
}

func NewScheduleService(db *database.DB, scheduleRepository schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:                 db,
		ScheduleRepository: scheduleRepository,
	}
}

func actorFromContext(ctx context.Context) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, _ := claims["role"].(string)
	return userID, user.Role(roleStr), nil
}

// Create implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Create(ctx context.Context, req schedule.SlotRequest) (schedule.SlotResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.SlotResponse{}, err
	}

	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return schedule.SlotResponse{}, err
	}

	created, err := s.ScheduleRepository.Create(ctx, schedule.ScheduleSlot{
		UserID:    userID,
		DiaSemana: *req.DiaSemana,
		Jornada:   schedule.Jornada(req.Jornada),
		Sede:      schedule.Sede(req.Sede),
	})
	if err != nil {
		return schedule.SlotResponse{}, err
	}

	return schedule.ToResponse(created), nil
}

// Get implements schedule.ScheduleService. Monitors only see their own slots;
// a directivo can fetch any.
func (s *ScheduleServiceImpl) Get(ctx context.Context, id string) (schedule.SlotResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return schedule.SlotResponse{}, err
	}

	slot, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.SlotResponse{}, err
	}

	if role != user.RoleDirectivo && slot.UserID != userID {
		return schedule.SlotResponse{}, schedule.ErrSlotNotFound
	}

	return schedule.ToResponse(slot), nil
}

// Update implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Update(ctx context.Context, id string, req schedule.SlotRequest) (schedule.SlotResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.SlotResponse{}, err
	}

	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return schedule.SlotResponse{}, err
	}

	slot, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.SlotResponse{}, err
	}
	if slot.UserID != userID {
		return schedule.SlotResponse{}, schedule.ErrSlotNotFound
	}

	slot.DiaSemana = *req.DiaSemana
	slot.Jornada = schedule.Jornada(req.Jornada)
	slot.Sede = schedule.Sede(req.Sede)

	updated, err := s.ScheduleRepository.Update(ctx, slot)
	if err != nil {
		return schedule.SlotResponse{}, err
	}

	return schedule.ToResponse(updated), nil
}

// Delete implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	slot, err := s.ScheduleRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slot.UserID != userID {
		return schedule.ErrSlotNotFound
	}

	return s.ScheduleRepository.Delete(ctx, id)
}

// ListOwn implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListOwn(ctx context.Context) ([]schedule.SlotResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	slots, err := s.ScheduleRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule slots: %w", err)
	}

	responses := make([]schedule.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, schedule.ToResponse(slot))
	}
	return responses, nil
}

// insertBatch inserts every valid slot, collecting one error line per skipped
// item. Duplicates inside the payload are caught before hitting the database.
func (s *ScheduleServiceImpl) insertBatch(ctx context.Context, userID string, items []schedule.SlotRequest) (created []schedule.SlotResponse, errores []string) {
	created = []schedule.SlotResponse{}
	seen := make(map[string]bool, len(items))

	for i, item := range items {
		if err := item.Validate(); err != nil {
			errores = append(errores, fmt.Sprintf("horario %d: %v", i+1, err))
			continue
		}

		key := fmt.Sprintf("%d-%s", *item.DiaSemana, item.Jornada)
		if seen[key] {
			errores = append(errores, fmt.Sprintf("horario %d: duplicated day and shift within the request", i+1))
			continue
		}
		seen[key] = true

		slot, err := s.ScheduleRepository.Create(ctx, schedule.ScheduleSlot{
			UserID:    userID,
			DiaSemana: *item.DiaSemana,
			Jornada:   schedule.Jornada(item.Jornada),
			Sede:      schedule.Sede(item.Sede),
		})
		if err != nil {
			if errors.Is(err, schedule.ErrDuplicateSlot) {
				errores = append(errores, fmt.Sprintf("horario %d: %v", i+1, err))
				continue
			}
			errores = append(errores, fmt.Sprintf("horario %d: could not be created", i+1))
			continue
		}
		created = append(created, schedule.ToResponse(slot))
	}

	return created, errores
}

// CreateBulk implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateBulk(ctx context.Context, req schedule.BulkSlotsRequest) (schedule.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.BulkResult{}, err
	}

	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return schedule.BulkResult{}, err
	}

	created, errores := s.insertBatch(ctx, userID, req.Horarios)

	result := schedule.BulkResult{
		Mensaje:          fmt.Sprintf("%d de %d horarios creados", len(created), len(req.Horarios)),
		HorariosCreados:  created,
		TotalSolicitados: len(req.Horarios),
		TotalCreados:     len(created),
		Errores:          errores,
	}
	return result, nil
}

// ReplaceAll implements schedule.ScheduleService. The delete and the inserts
// share one transaction: a database failure leaves the previous schedule
// intact. Per-item validation errors do not abort the swap.
func (s *ScheduleServiceImpl) ReplaceAll(ctx context.Context, req schedule.BulkSlotsRequest) (schedule.ReplaceResult, error) {
	if err := req.Validate(); err != nil {
		return schedule.ReplaceResult{}, err
	}

	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return schedule.ReplaceResult{}, err
	}

	var result schedule.ReplaceResult
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		deleted, err := s.ScheduleRepository.DeleteAllByUser(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete existing slots: %w", err)
		}

		created, errores := s.insertBatch(txCtx, userID, req.Horarios)

		result = schedule.ReplaceResult{
			Mensaje:            fmt.Sprintf("%d horarios eliminados, %d de %d creados", deleted, len(created), len(req.Horarios)),
			HorariosEliminados: deleted,
			HorariosCreados:    created,
			TotalSolicitados:   len(req.Horarios),
			TotalCreados:       len(created),
			Errores:            errores,
		}
		return nil
	})
	if err != nil {
		return schedule.ReplaceResult{}, err
	}

	return result, nil
}

// ListAll implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListAll(ctx context.Context, filter schedule.DirectivoSlotFilter) (schedule.DirectivoSlotsResponse, error) {
	if err := filter.Validate(); err != nil {
		return schedule.DirectivoSlotsResponse{}, err
	}

	slots, err := s.ScheduleRepository.List(ctx, filter)
	if err != nil {
		return schedule.DirectivoSlotsResponse{}, fmt.Errorf("failed to list schedule slots: %w", err)
	}

	responses := make([]schedule.SlotResponse, 0, len(slots))
	users := make(map[string]bool)
	for _, slot := range slots {
		responses = append(responses, schedule.ToResponse(slot))
		users[slot.UserID] = true
	}

	return schedule.DirectivoSlotsResponse{
		TotalHorarios:  len(responses),
		TotalMonitores: len(users),
		Horarios:       responses,
	}, nil
}
