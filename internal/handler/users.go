package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/exercise-tracker/internal/model"
	"github.com/fitrack/exercise-tracker/internal/server"
	"github.com/fitrack/exercise-tracker/internal/service"
)

// UsersHandler serves user creation and listing.
type UsersHandler struct {
	Handler
	users *service.UserService
}

// NewUsersHandler constructs a UsersHandler.
func NewUsersHandler(s *server.Server, users *service.UserService) *UsersHandler {
	return &UsersHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// Create handles POST /api/users.
func (h *UsersHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *CreateUserRequest) (*model.User, error) {
		return h.users.Create(c.Request().Context(), req.Username)
	}, http.StatusOK)
}

// List handles GET /api/users.
func (h *UsersHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *ListUsersRequest) ([]model.User, error) {
		return h.users.List(c.Request().Context())
	}, http.StatusOK)
}
