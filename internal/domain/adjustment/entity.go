package adjustment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment is a manual hour correction applied to a monitor's balance by a
// directivo. Records are immutable once created; mistakes are fixed by
// deleting and re-creating.
type Adjustment struct {
	ID            string
	MonitorID     string
	Fecha         time.Time
	CantidadHoras decimal.Decimal
	Motivo        string
	CreadoPor     string
	CreatedAt     time.Time

	// Joined from users.
	MonitorUsername *string
	MonitorNombre   *string
	CreadorNombre   *string
}
