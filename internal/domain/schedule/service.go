package schedule

import "context"

type ScheduleService interface {
	Create(ctx context.Context, req SlotRequest) (SlotResponse, error)
	Get(ctx context.Context, id string) (SlotResponse, error)
	Update(ctx context.Context, id string, req SlotRequest) (SlotResponse, error)
	Delete(ctx context.Context, id string) error
	ListOwn(ctx context.Context) ([]SlotResponse, error)
	// CreateBulk inserts every valid slot in the request and collects per-item
	// errors; it never fails the whole batch for one bad item.
	CreateBulk(ctx context.Context, req BulkSlotsRequest) (BulkResult, error)
	// ReplaceAll atomically swaps the caller's entire schedule for the given
	// set. Deletion and insertion run in one transaction.
	ReplaceAll(ctx context.Context, req BulkSlotsRequest) (ReplaceResult, error)
	ListAll(ctx context.Context, filter DirectivoSlotFilter) (DirectivoSlotsResponse, error)
}
