package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fitrack/exercise-tracker/internal/handler"
)

// registerSystemRoutes wires the non-API surface: the landing page, the
// static assets under public/, and the health probe.
func registerSystemRoutes(e *echo.Echo, h *handler.Handlers) {
	e.GET("/", h.Pages.ServeIndex)
	e.Static("/public", "public")
	e.GET("/status", h.Health.CheckHealth)
}
