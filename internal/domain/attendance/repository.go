package attendance

import "context"

type AttendanceRepository interface {
	// Create inserts the record and returns ErrDuplicateAttendance when the
	// user already recorded the same date and slot.
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	Update(ctx context.Context, att Attendance) (Attendance, error)
	UpdateEstado(ctx context.Context, id string, estado Estado) (Attendance, error)
	Delete(ctx context.Context, id string) error
	// List returns records joined with user and slot details, narrowed by the
	// filter. An empty filter returns everything.
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
