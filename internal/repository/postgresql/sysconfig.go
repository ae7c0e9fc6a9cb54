package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/sysconfig"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type configRepositoryImpl struct {
	db *database.DB
}

func NewConfigRepository(db *database.DB) sysconfig.ConfigRepository {
	return &configRepositoryImpl{db: db}
}

const configColumns = `id, clave, valor, tipo_dato, descripcion, creado_por, created_at, updated_at`

func scanConfig(row pgx.Row, e *sysconfig.ConfigEntry) error {
	return row.Scan(
		&e.ID,
		&e.Clave,
		&e.Valor,
		&e.TipoDato,
		&e.Descripcion,
		&e.CreadoPor,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

// Create implements sysconfig.ConfigRepository.
func (r *configRepositoryImpl) Create(ctx context.Context, entry sysconfig.ConfigEntry) (sysconfig.ConfigEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO system_configurations (id, clave, valor, tipo_dato, descripcion, creado_por)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + configColumns

	var created sysconfig.ConfigEntry
	err := scanConfig(q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		entry.Clave,
		entry.Valor,
		entry.TipoDato,
		entry.Descripcion,
		entry.CreadoPor,
	), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sysconfig.ConfigEntry{}, sysconfig.ErrClaveExists
		}
		return sysconfig.ConfigEntry{}, err
	}

	return created, nil
}

// GetByID implements sysconfig.ConfigRepository.
func (r *configRepositoryImpl) GetByID(ctx context.Context, id string) (sysconfig.ConfigEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + configColumns + ` FROM system_configurations WHERE id = $1`

	var found sysconfig.ConfigEntry
	if err := scanConfig(q.QueryRow(ctx, query, id), &found); err != nil {
		if err == pgx.ErrNoRows {
			return sysconfig.ConfigEntry{}, sysconfig.ErrConfigNotFound
		}
		return sysconfig.ConfigEntry{}, err
	}

	return found, nil
}

// GetByClave implements sysconfig.ConfigRepository.
func (r *configRepositoryImpl) GetByClave(ctx context.Context, clave string) (sysconfig.ConfigEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + configColumns + ` FROM system_configurations WHERE clave = $1`

	var found sysconfig.ConfigEntry
	if err := scanConfig(q.QueryRow(ctx, query, clave), &found); err != nil {
		if err == pgx.ErrNoRows {
			return sysconfig.ConfigEntry{}, sysconfig.ErrConfigNotFound
		}
		return sysconfig.ConfigEntry{}, err
	}

	return found, nil
}

// Update implements sysconfig.ConfigRepository.
func (r *configRepositoryImpl) Update(ctx context.Context, entry sysconfig.ConfigEntry) (sysconfig.ConfigEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE system_configurations
		SET valor = $1, descripcion = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + configColumns

	var updated sysconfig.ConfigEntry
	err := scanConfig(q.QueryRow(ctx, query, entry.Valor, entry.Descripcion, entry.ID), &updated)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sysconfig.ConfigEntry{}, sysconfig.ErrConfigNotFound
		}
		return sysconfig.ConfigEntry{}, err
	}

	return updated, nil
}

// DeleteByID implements sysconfig.ConfigRepository.
func (r *configRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM system_configurations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sysconfig.ErrConfigNotFound
	}
	return nil
}

// DeleteByClave implements sysconfig.ConfigRepository.
func (r *configRepositoryImpl) DeleteByClave(ctx context.Context, clave string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM system_configurations WHERE clave = $1`, clave)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return sysconfig.ErrConfigNotFound
	}
	return nil
}

// List implements sysconfig.ConfigRepository.
func (r *configRepositoryImpl) List(ctx context.Context) ([]sysconfig.ConfigEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + configColumns + ` FROM system_configurations ORDER BY clave`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []sysconfig.ConfigEntry
	for rows.Next() {
		var e sysconfig.ConfigEntry
		if err := scanConfig(rows, &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
