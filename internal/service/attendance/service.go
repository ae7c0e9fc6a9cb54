package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/attendance"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/schedule"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	schedule.ScheduleRepository
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.AttendanceRepository, scheduleRepository schedule.ScheduleRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		ScheduleRepository:   scheduleRepository,
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

// Create implements attendance.AttendanceService. The record always starts
// pendiente; nothing in the request can set a different state.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	slot, err := s.ScheduleRepository.GetByID(ctx, req.HorarioID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if slot.UserID != userID {
		return attendance.AttendanceResponse{}, attendance.ErrSlotNotOwned
	}

	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:   userID,
		SlotID:   &slot.ID,
		Fecha:    fecha,
		Presente: *req.Presente,
		Horas:    req.Horas,
		Estado:   attendance.EstadoPendiente,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// Get implements attendance.AttendanceService. Monitors only reach their own
// records; a directivo can fetch any.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	userID, role, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if role != user.RoleDirectivo && record.UserID != userID {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	return attendance.ToResponse(record), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record.UserID != userID {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	if req.Presente != nil {
		record.Presente = *req.Presente
	}
	if req.Horas != nil {
		record.Horas = *req.Horas
	}

	updated, err := s.AttendanceRepository.Update(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.UserID != userID {
		return attendance.ErrAttendanceNotFound
	}

	return s.AttendanceRepository.Delete(ctx, id)
}

// ListOwn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListOwn(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendancesResponse, error) {
	userID, _, err := actorFromContext(ctx)
	if err != nil {
		return attendance.ListAttendancesResponse{}, err
	}

	// Owner listings never honor a usuario_id filter.
	filter.UsuarioID = &userID
	filter.Sede = nil

	if err := filter.Validate(); err != nil {
		return attendance.ListAttendancesResponse{}, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendancesResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	totalHoras := decimal.Zero
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
		totalHoras = totalHoras.Add(record.Horas)
	}

	return attendance.ListAttendancesResponse{
		TotalAsistencias: len(responses),
		TotalHoras:       totalHoras,
		Asistencias:      responses,
	}, nil
}

// ListAll implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context, filter attendance.AttendanceFilter) (attendance.DirectivoAttendancesResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DirectivoAttendancesResponse{}, err
	}

	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.DirectivoAttendancesResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	totalHoras := decimal.Zero
	users := make(map[string]bool)
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
		totalHoras = totalHoras.Add(record.Horas)
		users[record.UserID] = true
	}

	return attendance.DirectivoAttendancesResponse{
		TotalAsistencias:   len(responses),
		TotalHoras:         totalHoras,
		MonitoresDistintos: len(users),
		Asistencias:        responses,
	}, nil
}

// Authorize implements attendance.AttendanceService. Any of the three states
// can be set, in any order; re-authorization and revocation are allowed.
func (s *AttendanceServiceImpl) Authorize(ctx context.Context, id string, req attendance.AuthorizeAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.AttendanceRepository.UpdateEstado(ctx, id, attendance.Estado(req.Estado))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(updated), nil
}
