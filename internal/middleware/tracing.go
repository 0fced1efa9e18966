package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fitrack/exercise-tracker/internal/server"
)

// TracingMiddleware owns the New Relic Echo middleware. With no
// application instance (agent disabled) every method degrades to a
// pass-through.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

// NewTracingMiddleware constructs a TracingMiddleware.
func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{server: s, nrApp: nrApp}
}

// NewRelicMiddleware installs transaction handling: it starts a
// transaction per request and stores it in the request context, which is
// what makes newrelic.FromContext work downstream.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing attaches request correlation attributes to the current
// transaction.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn != nil {
				if requestID := GetRequestID(c); requestID != "" {
					txn.AddAttribute("request.id", requestID)
				}
				txn.AddAttribute("http.route", c.Path())
				txn.AddAttribute("http.client_ip", c.RealIP())
			}
			return next(c)
		}
	}
}
