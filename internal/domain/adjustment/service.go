package adjustment

import "context"

type AdjustmentService interface {
	Create(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	Get(ctx context.Context, id string) (AdjustmentResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter AdjustmentFilter) (ListAdjustmentsResponse, error)
}
