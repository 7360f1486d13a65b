package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const userColumns = `id, email, username, phone, password_hash, referral, created_at, updated_at`

// DBTX is the subset of pgxpool.Pool the repository uses.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo stores users in PostgreSQL.
type Repo struct {
	db DBTX
}

// New creates a repository backed by db.
func New(db DBTX) *Repo {
	return &Repo{db: db}
}

func (r *Repo) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (email, username, phone, password_hash, referral)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		params.Email, params.Username, params.Phone, params.PasswordHash, params.Referral,
	)

	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return User{}, ErrDuplicate
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (r *Repo) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.one(row, "get user by id")
}

func (r *Repo) GetUserByIdentifier(ctx context.Context, identifier string) (User, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE lower(email) = lower($1) OR lower(username) = lower($1)
		LIMIT 1`, identifier)
	return r.one(row, "get user by identifier")
}

func (r *Repo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE lower(email) = lower($1) OR lower(username) = lower($2)
		)`, email, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

func (r *Repo) one(row pgx.Row, op string) (User, error) {
	user, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Phone,
		&user.PasswordHash,
		&user.Referral,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

var _ Repository = (*Repo)(nil)
