// Package handler is the HTTP layer: the first entry point for business
// logic after the router.
//
// It binds and validates requests, calls the service layer, and shapes
// responses, with per-request logging and tracing around every endpoint.
package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fitrack/exercise-tracker/internal/middleware"
	"github.com/fitrack/exercise-tracker/internal/server"
	"github.com/fitrack/exercise-tracker/internal/validation"
)

// Handler is the base type holding shared application dependencies,
// embedded by the concrete endpoint handlers.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returning by value is fine: the
// struct only carries a pointer and copies still share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// validatablePtr constrains PReq to be a pointer to Req that can validate
// itself, so the pipeline can allocate a fresh request per call. Binding
// into a shared registration-time instance would race under concurrent
// requests.
type validatablePtr[Req any] interface {
	*Req
	validation.Validatable
}

// Handle wraps a typed endpoint function with binding, validation, error
// handling, logging and tracing, and writes the result as JSON with the
// given status.
func Handle[Req any, PReq validatablePtr[Req], Res any](
	h Handler,
	handler func(c echo.Context, req PReq) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		method := c.Request().Method
		route := c.Path()

		txn := newrelic.FromContext(c.Request().Context())
		if txn != nil {
			txn.AddAttribute("handler.name", route)
		}

		logger := middleware.GetLogger(c).With().
			Str("operation", "handler").
			Str("method", method).
			Str("route", route).
			Logger()

		logger.Debug().Msg("handling request")

		req := PReq(new(Req))

		validationStart := time.Now()
		if err := validation.BindAndValidate(c, req); err != nil {
			validationDuration := time.Since(validationStart)

			logger.Warn().
				Err(err).
				Dur("validation_duration", validationDuration).
				Msg("request validation failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("validation.status", "failed")
			}

			// The global error handler formats the response.
			return err
		}
		validationDuration := time.Since(validationStart)

		handlerStart := time.Now()
		result, err := handler(c, req)
		handlerDuration := time.Since(handlerStart)

		if err != nil {
			logger.Error().
				Err(err).
				Dur("handler_duration", handlerDuration).
				Dur("total_duration", time.Since(start)).
				Msg("handler execution failed")

			if txn != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
				txn.AddAttribute("handler.status", "error")
			}
			return err
		}

		if txn != nil {
			txn.AddAttribute("handler.status", "success")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}

		logger.Info().
			Dur("handler_duration", handlerDuration).
			Dur("validation_duration", validationDuration).
			Dur("total_duration", time.Since(start)).
			Msg("request completed")

		return c.JSON(status, result)
	}
}
