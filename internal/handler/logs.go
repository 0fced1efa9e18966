package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/exercise-tracker/internal/server"
	"github.com/fitrack/exercise-tracker/internal/service"
)

// LogsHandler serves log retrieval.
type LogsHandler struct {
	Handler
	logs *service.LogService
}

// NewLogsHandler constructs a LogsHandler.
func NewLogsHandler(s *server.Server, logs *service.LogService) *LogsHandler {
	return &LogsHandler{
		Handler: NewHandler(s),
		logs:    logs,
	}
}

// Get handles GET /api/users/:id/logs. A missing log reports as a 200
// response with an error body, same contract as exercise logging.
func (h *LogsHandler) Get() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *GetLogsRequest) (any, error) {
		log, err := h.logs.Get(c.Request().Context(), req.ID, req.From, req.To, req.Limit)
		if errors.Is(err, service.ErrLogNotFound) {
			return errorResponse{Error: msgLogNotFound}, nil
		}
		if err != nil {
			return nil, err
		}
		return log, nil
	}, http.StatusOK)
}
