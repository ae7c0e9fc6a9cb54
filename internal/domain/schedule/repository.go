package schedule

import "context"

type ScheduleRepository interface {
	// Create inserts the slot and returns ErrDuplicateSlot when the user
	// already has a slot for the same day and shift.
	Create(ctx context.Context, slot ScheduleSlot) (ScheduleSlot, error)
	GetByID(ctx context.Context, id string) (ScheduleSlot, error)
	Update(ctx context.Context, slot ScheduleSlot) (ScheduleSlot, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]ScheduleSlot, error)
	// DeleteAllByUser removes every slot the user owns and reports how many
	// rows were deleted. Used by the transactional replace operation.
	DeleteAllByUser(ctx context.Context, userID string) (int, error)
	// List returns slots across all users joined with the owner's identity,
	// narrowed by the optional filter fields.
	List(ctx context.Context, filter DirectivoSlotFilter) ([]ScheduleSlot, error)
}
