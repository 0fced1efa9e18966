package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fitrack/exercise-tracker/internal/config"
	"github.com/fitrack/exercise-tracker/internal/database"
	"github.com/fitrack/exercise-tracker/internal/handler"
	"github.com/fitrack/exercise-tracker/internal/logger"
	"github.com/fitrack/exercise-tracker/internal/middleware"
	"github.com/fitrack/exercise-tracker/internal/repository"
	"github.com/fitrack/exercise-tracker/internal/router"
	"github.com/fitrack/exercise-tracker/internal/server"
	"github.com/fitrack/exercise-tracker/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	loggerService, err := logger.NewLoggerService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize logger service")
	}

	appLogger := logger.NewLogger(cfg, loggerService)

	if err := run(cfg, appLogger, loggerService); err != nil {
		appLogger.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(cfg *config.Config, appLogger *zerolog.Logger, loggerService *logger.LoggerService) error {
	migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(migrateCtx, appLogger, cfg); err != nil {
		return err
	}

	s, err := server.New(cfg, appLogger, loggerService)
	if err != nil {
		return err
	}

	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		return err
	}

	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(handlers, middlewares)
	s.SetupHTTPServer(e)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		appLogger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return err
	}
	loggerService.Shutdown(shutdownTimeout)

	appLogger.Info().Msg("server stopped")
	return nil
}
