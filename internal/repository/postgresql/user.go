package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campuslabs/monitoria-backend-go/internal/domain/user"
	"github.com/campuslabs/monitoria-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, username, nombre, role, autorizado, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, username, nombre, role, autorizado, password_hash, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		newUser.Username,
		newUser.Nombre,
		newUser.Role,
		newUser.Autorizado,
		newUser.PasswordHash,
	).Scan(
		&created.ID,
		&created.Username,
		&created.Nombre,
		&created.Role,
		&created.Autorizado,
		&created.PasswordHash,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrUsernameExists
		}
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, nombre, role, autorizado, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Username,
		&found.Nombre,
		&found.Role,
		&found.Autorizado,
		&found.PasswordHash,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, nombre, role, autorizado, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, username).Scan(
		&found.ID,
		&found.Username,
		&found.Nombre,
		&found.Role,
		&found.Autorizado,
		&found.PasswordHash,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := q.QueryRow(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// SetAutorizado implements user.UserRepository. The WHERE clause restricts the
// update to monitors, so directivos can never be (de)authorized this way.
func (r *userRepositoryImpl) SetAutorizado(ctx context.Context, id string, autorizado bool) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET autorizado = $1, updated_at = NOW()
		WHERE id = $2 AND role = $3
		RETURNING id, username, nombre, role, autorizado, password_hash, created_at, updated_at
	`

	var updated user.User
	err := q.QueryRow(ctx, query, autorizado, id, user.RoleMonitor).Scan(
		&updated.ID,
		&updated.Username,
		&updated.Nombre,
		&updated.Role,
		&updated.Autorizado,
		&updated.PasswordHash,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrMonitorNotFound
		}
		return user.User{}, err
	}

	return updated, nil
}

// ListMonitors implements user.UserRepository.
func (r *userRepositoryImpl) ListMonitors(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, nombre, role, autorizado, password_hash, created_at, updated_at
		FROM users
		WHERE role = $1
		ORDER BY nombre, username
	`

	rows, err := q.Query(ctx, query, user.RoleMonitor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var monitors []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Nombre,
			&u.Role,
			&u.Autorizado,
			&u.PasswordHash,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		monitors = append(monitors, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return monitors, nil
}
