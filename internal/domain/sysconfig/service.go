package sysconfig

import "context"

type ConfigService interface {
	Create(ctx context.Context, req CreateConfigRequest) (ConfigResponse, error)
	GetByID(ctx context.Context, id string) (ConfigResponse, error)
	GetByClave(ctx context.Context, clave string) (ConfigResponse, error)
	UpdateByID(ctx context.Context, id string, req UpdateConfigRequest) (ConfigResponse, error)
	UpdateByClave(ctx context.Context, clave string, req UpdateConfigRequest) (ConfigResponse, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByClave(ctx context.Context, clave string) error
	List(ctx context.Context) (ListConfigsResponse, error)
	// Initialize seeds the default keys, skipping any that already exist.
	Initialize(ctx context.Context) (InitializeResult, error)
}
