package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitrack/exercise-tracker/internal/model"
)

// ExercisesRepository is the PostgreSQL-backed Exercises store.
type ExercisesRepository struct {
	pool *pgxpool.Pool
}

// NewExercisesRepository constructs an ExercisesRepository.
func NewExercisesRepository(pool *pgxpool.Pool) *ExercisesRepository {
	return &ExercisesRepository{pool: pool}
}

// Create inserts an exercise record and returns it with its id. The
// record is a standalone copy; the same entry is appended to the owning
// user's log by the service layer.
func (r *ExercisesRepository) Create(ctx context.Context, username, description string, duration int, date string) (*model.Exercise, error) {
	exercise := &model.Exercise{
		Username:    username,
		Description: description,
		Duration:    duration,
		Date:        date,
	}

	err := r.pool.QueryRow(ctx,
		`INSERT INTO exercises (username, description, duration, date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		username, description, duration, date,
	).Scan(&exercise.ID)
	if err != nil {
		return nil, fmt.Errorf("creating exercise: %w", err)
	}

	return exercise, nil
}
