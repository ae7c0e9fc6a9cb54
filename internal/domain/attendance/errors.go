package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("an attendance record already exists for this date and slot")
	ErrSlotNotOwned        = errors.New("schedule slot does not belong to the user")
	ErrInvalidStatus       = errors.New("estado must be one of 'pendiente', 'autorizado' or 'rechazado'")
)
