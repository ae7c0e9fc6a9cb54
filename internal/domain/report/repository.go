package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonitorTotals is the raw per-monitor aggregate pulled from storage before
// pay is computed.
type MonitorTotals struct {
	MonitorID        string
	Username         string
	Nombre           string
	HorasAutorizadas decimal.Decimal
	HorasAjustadas   decimal.Decimal
}

type ReportRepository interface {
	// MonitorHourTotals aggregates authorized attendance hours and adjustment
	// deltas per monitor within the optional date range, optionally scoped to
	// one monitor.
	MonitorHourTotals(ctx context.Context, monitorID *string, inicio, fin *time.Time) ([]MonitorTotals, error)
}
