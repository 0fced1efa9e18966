package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/fitrack/exercise-tracker/internal/server"
)

// PagesHandler serves the root HTML page with the exercise-tracker forms.
type PagesHandler struct {
	Handler
}

// NewPagesHandler constructs a PagesHandler.
func NewPagesHandler(s *server.Server) *PagesHandler {
	return &PagesHandler{Handler: NewHandler(s)}
}

// ServeIndex reads public/index.html and serves it. Caching is disabled
// so edits to the page show up without a restart.
func (h *PagesHandler) ServeIndex(c echo.Context) error {
	pageBytes, err := os.ReadFile("public/index.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read index page: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(pageBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
