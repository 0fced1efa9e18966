// Package service contains the business logic of the exercise tracker.
//
// It sits between the handler and repository layers: handlers hand it
// validated input, it orchestrates store calls and owns the date
// formatting and log filtering rules.
package service

import (
	"errors"

	"github.com/fitrack/exercise-tracker/internal/repository"
	"github.com/fitrack/exercise-tracker/internal/server"
)

// Domain errors. The handlers translate these into the API's
// 200-with-error-body contract; they never reach the global error handler.
var (
	ErrUserNotFound = errors.New("no user found with the specified user ID")
	ErrLogNotFound  = errors.New("no log found for the specified user ID")
)

// Services is the container for all business logic services.
type Services struct {
	Users     *UserService
	Exercises *ExerciseService
	Logs      *LogService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Users:     NewUserService(s, repos.Users),
		Exercises: NewExerciseService(s, repos.Users, repos.Exercises, repos.Logs),
		Logs:      NewLogService(s, repos.Logs),
	}, nil
}
