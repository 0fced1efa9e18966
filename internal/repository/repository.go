// Package repository handles all interactions with the document store.
//
// It contains the SQL for fetching, persisting and mutating records,
// abstracting storage away from the service layer. Each store is exposed
// as an interface so services can be exercised against in-memory doubles.
package repository

import (
	"context"
	"errors"

	"github.com/fitrack/exercise-tracker/internal/model"
	"github.com/fitrack/exercise-tracker/internal/server"
)

// ErrNotFound is returned when a record does not exist. Malformed ids map
// to it as well: an id that cannot name a record is treated as a record
// that does not exist, never as a format error.
var ErrNotFound = errors.New("record not found")

// Users persists user accounts.
type Users interface {
	// Create stores a new user and returns it with its store-generated id.
	Create(ctx context.Context, username string) (*model.User, error)

	// List returns all users in store iteration order.
	List(ctx context.Context) ([]model.User, error)

	// Get resolves a user by id, returning ErrNotFound when absent.
	Get(ctx context.Context, id string) (*model.User, error)
}

// Exercises persists standalone exercise records.
type Exercises interface {
	// Create stores a new exercise and returns it with its id.
	Create(ctx context.Context, username, description string, duration int, date string) (*model.Exercise, error)
}

// Logs persists per-user cumulative exercise logs.
type Logs interface {
	// Get resolves a log by the owning user's id, returning ErrNotFound
	// when no exercise has been logged for that user yet.
	Get(ctx context.Context, id string) (*model.Log, error)

	// Append adds one entry to the user's log, creating the log on first
	// use, incrementing count by exactly one otherwise. The operation is a
	// single atomic statement: concurrent appends for the same user never
	// lose updates.
	Append(ctx context.Context, userID, username string, entry model.LogEntry) error
}

// Repositories is the container for all store implementations, wired from
// the shared database pool.
type Repositories struct {
	Users     Users
	Exercises Exercises
	Logs      Logs
}

// NewRepositories constructs the repository container on top of the
// application's database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:     NewUsersRepository(s.DB.Pool),
		Exercises: NewExercisesRepository(s.DB.Pool),
		Logs:      NewLogsRepository(s.DB.Pool),
	}
}
