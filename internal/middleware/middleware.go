// Package middleware holds global and route-specific middleware.
//
// These intercept requests for cross-cutting concerns: request
// correlation ids, request-scoped logging, CORS, rate limiting, panic
// recovery, tracing, and the global error handler.
package middleware
