// Package router initializes the HTTP router (Echo).
//
// It registers the middleware stack and maps the API routes to their
// handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fitrack/exercise-tracker/internal/handler"
	"github.com/fitrack/exercise-tracker/internal/middleware"
)

// New builds the Echo instance with the full middleware chain and all
// routes registered. Middleware order matters: the request id must exist
// before the tracing and context-enhancing layers read it, and the
// context enhancer must run before anything that logs.
func New(h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	e.Use(mw.Global.Recover())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())
	e.Use(middleware.RequestID())
	e.Use(mw.Tracing.NewRelicMiddleware())
	e.Use(mw.Tracing.EnhanceTracing())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.RateLimit.Limit())

	registerAPIRoutes(e, h)
	registerSystemRoutes(e, h)

	return e
}

// registerAPIRoutes maps the exercise-tracker endpoints.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers) {
	api := e.Group("/api")

	api.POST("/users", h.Users.Create())
	api.GET("/users", h.Users.List())
	api.POST("/users/:id/exercises", h.Exercises.Log())
	api.GET("/users/:id/logs", h.Logs.Get())
}
