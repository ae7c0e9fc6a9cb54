package user

import "context"

type UserService interface {
	// Current returns the authenticated user's profile.
	Current(ctx context.Context) (UserResponse, error)
	ListMonitors(ctx context.Context) (ListMonitorsResponse, error)
	// AuthorizeMonitor flips a monitor's autorizado flag in either direction.
	AuthorizeMonitor(ctx context.Context, req AuthorizeMonitorRequest) (UserResponse, error)
}
