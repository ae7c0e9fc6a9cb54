package sysconfig

import "context"

type ConfigRepository interface {
	// Create inserts the entry and returns ErrClaveExists when the clave is
	// already taken.
	Create(ctx context.Context, entry ConfigEntry) (ConfigEntry, error)
	GetByID(ctx context.Context, id string) (ConfigEntry, error)
	GetByClave(ctx context.Context, clave string) (ConfigEntry, error)
	Update(ctx context.Context, entry ConfigEntry) (ConfigEntry, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByClave(ctx context.Context, clave string) error
	List(ctx context.Context) ([]ConfigEntry, error)
}
