// Package logger configures the application's logging and observability.
//
// It builds the zerolog root logger (console or JSON per config),
// initializes the optional New Relic agent, and provides helpers for
// correlating logs with traces and for logging pgx query activity.
package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"

	"github.com/fitrack/exercise-tracker/internal/config"
)

// LoggerService owns the New Relic application instance. When New Relic
// is not configured, the service exists but holds a nil application and
// every consumer degrades to a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic agent if a license key is
// configured. Without a key it returns a service with no application.
func NewLoggerService(cfg *config.Config) (*LoggerService, error) {
	if !cfg.Observability.NewRelicEnabled() {
		return &LoggerService{}, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(cfg.Observability.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
	}
	if cfg.Observability.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stderr))
	}

	nrApp, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize new relic application: %w", err)
	}

	return &LoggerService{nrApp: nrApp}, nil
}

// GetApplication returns the New Relic application, or nil when disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	return s.nrApp
}

// Shutdown flushes pending telemetry. Safe to call when disabled.
func (s *LoggerService) Shutdown(timeout time.Duration) {
	if s.nrApp != nil {
		s.nrApp.Shutdown(timeout)
	}
}

// NewLogger builds the root application logger.
//
// Format and level come from the observability config. When New Relic log
// forwarding is enabled, log lines are decorated and forwarded through the
// agent's zerolog writer.
func NewLogger(cfg *config.Config, service *LoggerService) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	switch {
	case service != nil && service.nrApp != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled:
		w := zerologWriter.New(os.Stdout, service.nrApp)
		logger = zerolog.New(w)
	case cfg.Observability.Logging.Format == "console":
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	default:
		logger = zerolog.New(os.Stdout)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger
}

// WithTraceContext returns a child logger carrying the transaction's
// trace.id and span.id so log lines can be joined to distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}
	md := txn.GetTraceMetadata()
	ctx := logger.With()
	if md.TraceID != "" {
		ctx = ctx.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		ctx = ctx.Str("span.id", md.SpanID)
	}
	return ctx.Logger()
}
