package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/adjustment"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type adjustmentRepositoryImpl struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepositoryImpl{db: db}
}

const adjustmentColumns = `
	aj.id, aj.monitor_id, aj.fecha, aj.cantidad_horas, aj.motivo, aj.creado_por, aj.created_at,
	m.username, m.nombre, c.nombre
`

const adjustmentJoins = `
	FROM hour_adjustments aj
	JOIN users m ON m.id = aj.monitor_id
	JOIN users c ON c.id = aj.creado_por
`

func scanAdjustment(row pgx.Row, a *adjustment.Adjustment) error {
	return row.Scan(
		&a.ID,
		&a.MonitorID,
		&a.Fecha,
		&a.CantidadHoras,
		&a.Motivo,
		&a.CreadoPor,
		&a.CreatedAt,
		&a.MonitorUsername,
		&a.MonitorNombre,
		&a.CreadorNombre,
	)
}

// Create implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Create(ctx context.Context, adj adjustment.Adjustment) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO hour_adjustments (id, monitor_id, fecha, cantidad_horas, motivo, creado_por)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	id := uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, insertQuery,
		id,
		adj.MonitorID,
		adj.Fecha,
		adj.CantidadHoras,
		adj.Motivo,
		adj.CreadoPor,
	).Scan(&id)
	if err != nil {
		return adjustment.Adjustment{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) GetByID(ctx context.Context, id string) (adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + adjustmentJoins + ` WHERE aj.id = $1`

	var found adjustment.Adjustment
	if err := scanAdjustment(q.QueryRow(ctx, query, id), &found); err != nil {
		if err == pgx.ErrNoRows {
			return adjustment.Adjustment{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.Adjustment{}, err
	}

	return found, nil
}

// Delete implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM hour_adjustments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentNotFound
	}
	return nil
}

// List implements adjustment.AdjustmentRepository.
func (r *adjustmentRepositoryImpl) List(ctx context.Context, monitorID *string, inicio, fin time.Time) ([]adjustment.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + adjustmentColumns + adjustmentJoins + ` WHERE aj.fecha BETWEEN $1 AND $2`
	args := []interface{}{inicio, fin}

	if monitorID != nil {
		query += ` AND aj.monitor_id = $3`
		args = append(args, *monitorID)
	}

	query += ` ORDER BY aj.fecha DESC, aj.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var adjustments []adjustment.Adjustment
	for rows.Next() {
		var a adjustment.Adjustment
		if err := scanAdjustment(rows, &a); err != nil {
			return nil, err
		}
		adjustments = append(adjustments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return adjustments, nil
}
