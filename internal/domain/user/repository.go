package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	GetByUsername(ctx context.Context, username string) (User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// SetAutorizado flips the autorizado flag of a MONITOR user.
	// Returns ErrMonitorNotFound when the id does not belong to a monitor.
	SetAutorizado(ctx context.Context, id string, autorizado bool) (User, error)

	// ListMonitors returns every MONITOR account ordered by nombre.
	ListMonitors(ctx context.Context) ([]User, error)
}
