package attendance

import "context"

type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
	ListOwn(ctx context.Context, filter AttendanceFilter) (ListAttendancesResponse, error)
	ListAll(ctx context.Context, filter AttendanceFilter) (DirectivoAttendancesResponse, error)
	Authorize(ctx context.Context, id string, req AuthorizeAttendanceRequest) (AttendanceResponse, error)
}
