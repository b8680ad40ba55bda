package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/dbx"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE code Postgres reports when an insert
// breaks a unique constraint.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

// Create inserts a new user, assigning it a fresh id. A username collision
// surfaces as common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	query := `
		INSERT INTO users (id, username, password_hash, email)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	user.ID = uuid.NewString()

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.UserName, user.PasswordHash, user.Email).Scan(&user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

// GetUserByLogin fetches a user by username. A missing row surfaces as
// common.ErrorNotFound.
func (r *PostgresRepository) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	query := `
		SELECT id, username, password_hash, email, created_at
		FROM users
		WHERE username = $1
	`

	user := &User{}

	err := r.db.QueryRowContext(ctx, query, login).
		Scan(&user.ID, &user.UserName, &user.PasswordHash, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}
