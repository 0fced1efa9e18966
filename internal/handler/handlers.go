package handler

import (
	"github.com/fitrack/exercise-tracker/internal/server"
	"github.com/fitrack/exercise-tracker/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one object
// around instead of many.
type Handlers struct {
	Users     *UsersHandler
	Exercises *ExercisesHandler
	Logs      *LogsHandler
	Health    *HealthHandler
	Pages     *PagesHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Users:     NewUsersHandler(s, services.Users),
		Exercises: NewExercisesHandler(s, services.Exercises),
		Logs:      NewLogsHandler(s, services.Logs),
		Health:    NewHealthHandler(s),
		Pages:     NewPagesHandler(s),
	}
}
