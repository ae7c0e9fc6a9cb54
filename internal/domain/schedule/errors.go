package schedule

import "errors"

var (
	ErrSlotNotFound  = errors.New("schedule slot not found")
	ErrDuplicateSlot = errors.New("a slot already exists for this day and shift")
)
