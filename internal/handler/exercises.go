package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/exercise-tracker/internal/server"
	"github.com/fitrack/exercise-tracker/internal/service"
)

// ExercisesHandler serves exercise logging.
type ExercisesHandler struct {
	Handler
	exercises *service.ExerciseService
}

// NewExercisesHandler constructs an ExercisesHandler.
func NewExercisesHandler(s *server.Server, exercises *service.ExerciseService) *ExercisesHandler {
	return &ExercisesHandler{
		Handler:   NewHandler(s),
		exercises: exercises,
	}
}

// Log handles POST /api/users/:id/exercises.
//
// An unknown user id is not an error status: the contract reports it as
// a 200 response with an error body, so it is mapped here before the
// error can reach the global handler.
func (h *ExercisesHandler) Log() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *LogExerciseRequest) (any, error) {
		exercise, err := h.exercises.Log(c.Request().Context(), req.ID, req.Description, req.Duration, req.Date)
		if errors.Is(err, service.ErrUserNotFound) {
			return errorResponse{Error: msgUserNotFound}, nil
		}
		if err != nil {
			return nil, err
		}
		return exercise, nil
	}, http.StatusOK)
}
