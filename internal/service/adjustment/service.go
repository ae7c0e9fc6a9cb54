package adjustment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/adjustment"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type AdjustmentServiceImpl struct {
	db *database.DB
	adjustment.AdjustmentRepository
	user.UserRepository
}

func NewAdjustmentService(db *database.DB, adjustmentRepository adjustment.AdjustmentRepository, userRepository user.UserRepository) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{
		db:                   db,
		AdjustmentRepository: adjustmentRepository,
		UserRepository:       userRepository,
	}
}

// Create implements adjustment.AdjustmentService. The creator is always the
// authenticated directivo from the token.
func (s *AdjustmentServiceImpl) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	actorID, ok := claims["user_id"].(string)
	if !ok || actorID == "" {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	target, err := s.UserRepository.GetByID(ctx, req.MonitorID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return adjustment.AdjustmentResponse{}, user.ErrMonitorNotFound
		}
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !target.IsMonitor() {
		return adjustment.AdjustmentResponse{}, user.ErrMonitorNotFound
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	created, err := s.AdjustmentRepository.Create(ctx, adjustment.Adjustment{
		MonitorID:     req.MonitorID,
		Fecha:         fecha,
		CantidadHoras: req.CantidadHoras,
		Motivo:        req.Motivo,
		CreadoPor:     actorID,
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	return adjustment.ToResponse(created), nil
}

// Get implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Get(ctx context.Context, id string) (adjustment.AdjustmentResponse, error) {
	found, err := s.AdjustmentRepository.GetByID(ctx, id)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	return adjustment.ToResponse(found), nil
}

// Delete implements adjustment.AdjustmentService. Any directivo may delete
// any adjustment, not only its creator.
func (s *AdjustmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AdjustmentRepository.Delete(ctx, id)
}

// List implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) List(ctx context.Context, filter adjustment.AdjustmentFilter) (adjustment.ListAdjustmentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return adjustment.ListAdjustmentsResponse{}, err
	}

	inicio, fin := filter.Resolve(time.Now())

	adjustments, err := s.AdjustmentRepository.List(ctx, filter.MonitorID, inicio, fin)
	if err != nil {
		return adjustment.ListAdjustmentsResponse{}, fmt.Errorf("failed to list adjustments: %w", err)
	}

	responses := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	totalHoras := decimal.Zero
	monitors := make(map[string]bool)
	for _, adj := range adjustments {
		responses = append(responses, adjustment.ToResponse(adj))
		totalHoras = totalHoras.Add(adj.CantidadHoras)
		monitors[adj.MonitorID] = true
	}

	return adjustment.ListAdjustmentsResponse{
		TotalAjustes:        len(responses),
		TotalHorasAjustadas: totalHoras,
		MonitoresAfectados:  len(monitors),
		Periodo: adjustment.Periodo{
			FechaInicio: inicio.Format("2006-01-02"),
			FechaFin:    fin.Format("2006-01-02"),
		},
		Ajustes: responses,
	}, nil
}
