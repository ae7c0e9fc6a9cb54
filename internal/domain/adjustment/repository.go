package adjustment

import (
	"context"
	"time"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, adj Adjustment) (Adjustment, error)
	GetByID(ctx context.Context, id string) (Adjustment, error)
	Delete(ctx context.Context, id string) error
	// List returns adjustments within the inclusive date range, optionally
	// scoped to one monitor, joined with monitor and creator identities.
	List(ctx context.Context, monitorID *string, inicio, fin time.Time) ([]Adjustment, error)
}
