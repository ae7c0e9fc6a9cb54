package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/schedule"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, slot schedule.ScheduleSlot) (schedule.ScheduleSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_slots (id, user_id, dia_semana, jornada, sede)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, dia_semana, jornada, sede
	`

	var created schedule.ScheduleSlot
	err := q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		slot.UserID,
		slot.DiaSemana,
		slot.Jornada,
		slot.Sede,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.DiaSemana,
		&created.Jornada,
		&created.Sede,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.ScheduleSlot{}, schedule.ErrDuplicateSlot
		}
		return schedule.ScheduleSlot{}, err
	}

	return created, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.ScheduleSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, dia_semana, jornada, sede
		FROM schedule_slots
		WHERE id = $1
	`

	var found schedule.ScheduleSlot
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.DiaSemana,
		&found.Jornada,
		&found.Sede,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ScheduleSlot{}, schedule.ErrSlotNotFound
		}
		return schedule.ScheduleSlot{}, err
	}

	return found, nil
}

// Update implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Update(ctx context.Context, slot schedule.ScheduleSlot) (schedule.ScheduleSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedule_slots
		SET dia_semana = $1, jornada = $2, sede = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, user_id, dia_semana, jornada, sede
	`

	var updated schedule.ScheduleSlot
	err := q.QueryRow(ctx, query,
		slot.DiaSemana,
		slot.Jornada,
		slot.Sede,
		slot.ID,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.DiaSemana,
		&updated.Jornada,
		&updated.Sede,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ScheduleSlot{}, schedule.ErrSlotNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.ScheduleSlot{}, schedule.ErrDuplicateSlot
		}
		return schedule.ScheduleSlot{}, err
	}

	return updated, nil
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_slots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrSlotNotFound
	}
	return nil
}

// ListByUser implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]schedule.ScheduleSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, dia_semana, jornada, sede
		FROM schedule_slots
		WHERE user_id = $1
		ORDER BY dia_semana, jornada
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSlots(rows, false)
}

// DeleteAllByUser implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) DeleteAllByUser(ctx context.Context, userID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_slots WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) List(ctx context.Context, filter schedule.DirectivoSlotFilter) ([]schedule.ScheduleSlot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.dia_semana, s.jornada, s.sede, u.username, u.nombre
		FROM schedule_slots s
		JOIN users u ON u.id = s.user_id
		WHERE 1=1
	`
	args := []interface{}{}
	idx := 1

	if filter.UsuarioID != nil {
		query += fmt.Sprintf(" AND s.user_id = $%d", idx)
		args = append(args, *filter.UsuarioID)
		idx++
	}
	if filter.DiaSemana != nil {
		query += fmt.Sprintf(" AND s.dia_semana = $%d", idx)
		args = append(args, *filter.DiaSemana)
		idx++
	}
	if filter.Jornada != nil {
		query += fmt.Sprintf(" AND s.jornada = $%d", idx)
		args = append(args, *filter.Jornada)
		idx++
	}
	if filter.Sede != nil {
		query += fmt.Sprintf(" AND s.sede = $%d", idx)
		args = append(args, *filter.Sede)
		idx++
	}

	query += " ORDER BY u.nombre, s.dia_semana, s.jornada"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSlots(rows, true)
}

func scanSlots(rows pgx.Rows, withUser bool) ([]schedule.ScheduleSlot, error) {
	var slots []schedule.ScheduleSlot
	for rows.Next() {
		var s schedule.ScheduleSlot
		var err error
		if withUser {
			err = rows.Scan(&s.ID, &s.UserID, &s.DiaSemana, &s.Jornada, &s.Sede, &s.Username, &s.Nombre)
		} else {
			err = rows.Scan(&s.ID, &s.UserID, &s.DiaSemana, &s.Jornada, &s.Sede)
		}
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return slots, nil
}
