package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitrack/exercise-tracker/internal/model"
)

// UsersRepository is the PostgreSQL-backed Users store.
type UsersRepository struct {
	pool *pgxpool.Pool
}

// NewUsersRepository constructs a UsersRepository.
func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{pool: pool}
}

// Create inserts a user and returns it with the store-generated id.
// Duplicate usernames are allowed; there is no uniqueness constraint.
func (r *UsersRepository) Create(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{Username: username}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (username) VALUES ($1) RETURNING id`,
		username,
	).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// List returns all users without an explicit sort; the order is whatever
// the store iterates, which this schema keeps stable across reads.
func (r *UsersRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, username FROM users`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}

// Get resolves a user by id. Ids that are not valid UUIDs cannot name a
// record, so they resolve to ErrNotFound rather than a format error.
func (r *UsersRepository) Get(ctx context.Context, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", id, err)
	}

	return &u, nil
}
