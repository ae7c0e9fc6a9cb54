package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado is the authorization state of an attendance record. Every record
// starts in EstadoPendiente; only a directivo moves it from there.
type Estado string

const (
	EstadoPendiente  Estado = "pendiente"
	EstadoAutorizado Estado = "autorizado"
	EstadoRechazado  Estado = "rechazado"
)

func (e Estado) Display() string {
	switch e {
	case EstadoPendiente:
		return "Pendiente"
	case EstadoAutorizado:
		return "Autorizado"
	case EstadoRechazado:
		return "Rechazado"
	}
	return string(e)
}

type Attendance struct {
	ID        string
	UserID    string
	SlotID    *string
	Fecha     time.Time
	Presente  bool
	Horas     decimal.Decimal
	Estado    Estado
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined from users for directivo listings.
	Username *string
	Nombre   *string

	// Joined from the schedule slot, when the record has one.
	SlotDiaSemana *int
	SlotJornada   *string
	SlotSede      *string
}
