package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/report"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/sysconfig"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	db *database.DB
	report.ReportRepository
	sysconfig.ConfigRepository
}

func NewReportService(db *database.DB, reportRepository report.ReportRepository, configRepository sysconfig.ConfigRepository) report.ReportService {
	return &ReportServiceImpl{
		db:               db,
		ReportRepository: reportRepository,
		ConfigRepository: configRepository,
	}
}

// costoPorHora reads the configured hourly rate. A missing key is not an
// error: the report simply omits pay figures.
func (s *ReportServiceImpl) costoPorHora(ctx context.Context) (*decimal.Decimal, error) {
	entry, err := s.ConfigRepository.GetByClave(ctx, "costo_por_hora")
	if err != nil {
		if errors.Is(err, sysconfig.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if rate, ok := entry.Decode().(decimal.Decimal); ok {
		return &rate, nil
	}
	return nil, nil
}

// Hours implements report.ReportService.
func (s *ReportServiceImpl) Hours(ctx context.Context, filter report.HoursFilter) (report.HoursReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.HoursReportResponse{}, err
	}

	var inicio, fin *time.Time
	if filter.FechaInicio != nil {
		if t, err := time.Parse("2006-01-02", *filter.FechaInicio); err == nil {
			inicio = &t
		}
	}
	if filter.FechaFin != nil {
		if t, err := time.Parse("2006-01-02", *filter.FechaFin); err == nil {
			fin = &t
		}
	}

	totals, err := s.ReportRepository.MonitorHourTotals(ctx, filter.MonitorID, inicio, fin)
	if err != nil {
		return report.HoursReportResponse{}, fmt.Errorf("failed to aggregate monitor hours: %w", err)
	}

	rate, err := s.costoPorHora(ctx)
	if err != nil {
		return report.HoursReportResponse{}, fmt.Errorf("failed to read costo_por_hora: %w", err)
	}

	monitors := make([]report.MonitorHours, 0, len(totals))
	grandTotal := decimal.Zero
	for _, t := range totals {
		total := t.HorasAutorizadas.Add(t.HorasAjustadas)
		entry := report.MonitorHours{
			MonitorID:        t.MonitorID,
			Username:         t.Username,
			Nombre:           t.Nombre,
			HorasAutorizadas: t.HorasAutorizadas,
			HorasAjustadas:   t.HorasAjustadas,
			TotalHoras:       total,
		}
		if rate != nil {
			pago := total.Mul(*rate)
			entry.PagoTotal = &pago
		}
		monitors = append(monitors, entry)
		grandTotal = grandTotal.Add(total)
	}

	return report.HoursReportResponse{
		TotalMonitores: len(monitors),
		TotalHoras:     grandTotal,
		CostoPorHora:   rate,
		Monitores:      monitors,
	}, nil
}
