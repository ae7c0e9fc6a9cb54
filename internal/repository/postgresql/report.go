package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/report"
	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// MonitorHourTotals implements report.ReportRepository. Attendance hours only
// count when the record is both present and authorized; adjustments always
// count within the range.
func (r *reportRepositoryImpl) MonitorHourTotals(ctx context.Context, monitorID *string, inicio, fin *time.Time) ([]report.MonitorTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.username, u.nombre,
			COALESCE((
				SELECT SUM(a.horas)
				FROM attendances a
				WHERE a.user_id = u.id
				  AND a.presente
				  AND a.estado = 'autorizado'
	`
	args := []interface{}{}
	idx := 1

	attCond, adjCond := "", ""
	if inicio != nil {
		attCond += fmt.Sprintf(" AND a.fecha >= $%d", idx)
		args = append(args, *inicio)
		idx++
	}
	if fin != nil {
		attCond += fmt.Sprintf(" AND a.fecha <= $%d", idx)
		args = append(args, *fin)
		idx++
	}
	if inicio != nil {
		adjCond += fmt.Sprintf(" AND aj.fecha >= $%d", idx)
		args = append(args, *inicio)
		idx++
	}
	if fin != nil {
		adjCond += fmt.Sprintf(" AND aj.fecha <= $%d", idx)
		args = append(args, *fin)
		idx++
	}

	query += attCond + `
			), 0) AS horas_autorizadas,
			COALESCE((
				SELECT SUM(aj.cantidad_horas)
				FROM hour_adjustments aj
				WHERE aj.monitor_id = u.id
	` + adjCond + `
			), 0) AS horas_ajustadas
		FROM users u
		WHERE u.role = '` + string(user.RoleMonitor) + `'
	`

	if monitorID != nil {
		query += fmt.Sprintf(" AND u.id = $%d", idx)
		args = append(args, *monitorID)
	}

	query += " ORDER BY u.nombre, u.username"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []report.MonitorTotals
	for rows.Next() {
		var t report.MonitorTotals
		if err := rows.Scan(&t.MonitorID, &t.Username, &t.Nombre, &t.HorasAutorizadas, &t.HorasAjustadas); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return totals, nil
}
