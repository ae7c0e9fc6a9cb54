package user

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
	}
}

// Current implements user.UserService.
func (s *UserServiceImpl) Current(ctx context.Context) (user.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.UserResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	userData, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(userData), nil
}

// ListMonitors implements user.UserService.
func (s *UserServiceImpl) ListMonitors(ctx context.Context) (user.ListMonitorsResponse, error) {
	monitors, err := s.UserRepository.ListMonitors(ctx)
	if err != nil {
		return user.ListMonitorsResponse{}, fmt.Errorf("failed to list monitors: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(monitors))
	for _, m := range monitors {
		responses = append(responses, user.ToResponse(m))
	}

	return user.ListMonitorsResponse{
		TotalMonitores: len(responses),
		Monitores:      responses,
	}, nil
}

// AuthorizeMonitor implements user.UserService.
func (s *UserServiceImpl) AuthorizeMonitor(ctx context.Context, req user.AuthorizeMonitorRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.SetAutorizado(ctx, req.MonitorID, req.Autorizado)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(updated), nil
}
