package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/attendance"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.slot_id, a.fecha, a.presente, a.horas, a.estado, a.created_at, a.updated_at,
	u.username, u.nombre,
	s.dia_semana, s.jornada, s.sede
`

const attendanceJoins = `
	FROM attendances a
	JOIN users u ON u.id = a.user_id
	LEFT JOIN schedule_slots s ON s.id = a.slot_id
`

func scanAttendance(row pgx.Row, a *attendance.Attendance) error {
	return row.Scan(
		&a.ID,
		&a.UserID,
		&a.SlotID,
		&a.Fecha,
		&a.Presente,
		&a.Horas,
		&a.Estado,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.Username,
		&a.Nombre,
		&a.SlotDiaSemana,
		&a.SlotJornada,
		&a.SlotSede,
	)
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO attendances (id, user_id, slot_id, fecha, presente, horas, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	id := uuid.Must(uuid.NewV7()).String()
	err := q.QueryRow(ctx, insertQuery,
		id,
		att.UserID,
		att.SlotID,
		att.Fecha,
		att.Presente,
		att.Horas,
		att.Estado,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE a.id = $1`

	var found attendance.Attendance
	if err := scanAttendance(q.QueryRow(ctx, query, id), &found); err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return found, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE attendances
		SET presente = $1, horas = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, updateQuery, att.Presente, att.Horas, att.ID).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return r.GetByID(ctx, id)
}

// UpdateEstado implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) UpdateEstado(ctx context.Context, id string, estado attendance.Estado) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE attendances
		SET estado = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, updateQuery, estado, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return r.GetByID(ctx, updatedID)
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + attendanceJoins + ` WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filter.UsuarioID != nil {
		query += fmt.Sprintf(" AND a.user_id = $%d", idx)
		args = append(args, *filter.UsuarioID)
		idx++
	}
	if filter.FechaInicio != nil {
		query += fmt.Sprintf(" AND a.fecha >= $%d", idx)
		args = append(args, *filter.FechaInicio)
		idx++
	}
	if filter.FechaFin != nil {
		query += fmt.Sprintf(" AND a.fecha <= $%d", idx)
		args = append(args, *filter.FechaFin)
		idx++
	}
	if filter.Estado != nil {
		query += fmt.Sprintf(" AND a.estado = $%d", idx)
		args = append(args, *filter.Estado)
		idx++
	}
	if filter.HorarioID != nil {
		query += fmt.Sprintf(" AND a.slot_id = $%d", idx)
		args = append(args, *filter.HorarioID)
		idx++
	}
	if filter.Sede != nil {
		query += fmt.Sprintf(" AND s.sede = $%d", idx)
		args = append(args, *filter.Sede)
		idx++
	}

	query += " ORDER BY a.fecha DESC, a.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := scanAttendance(rows, &a); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
