package app

import (
	"context"
	"errors"
	"fmt"
	"lockin_backend/internal/config"
	"lockin_backend/internal/repository/schema"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
	server          *http.Server
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

// initLogger настраивает глобальный zerolog: уровень из LOG_LEVEL, консольный вывод в dev
func (s *App) initLogger() zerolog.Logger {
	cfg := s.ServiceProvider.LogCfg()

	level, err := zerolog.ParseLevel(cfg.Level())
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Pretty() {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly})
	}
	log.Logger = logger

	return logger
}

// Run - старт: конфиг, схема БД, janitor, HTTP сервер. Блокируется до SIGINT/SIGTERM
func (s *App) Run() error {
	err := config.Load(".env")
	s.initServiceProvider()
	logger := s.initLogger()
	if err != nil {
		logger.Warn().Err(err).Msg("error loading .env file, using process environment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defer s.Close()

	if err := schema.Apply(ctx, s.ServiceProvider.DBClient(ctx)); err != nil {
		return err
	}

	if err := s.ServiceProvider.Janitor(ctx).Start(); err != nil {
		return err
	}

	s.server = &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.server.Addr).Msg("starting server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	return nil
}

// Close останавливает janitor и закрывает пул соединений
func (s *App) Close() {
	sp := s.ServiceProvider
	if sp == nil {
		return
	}

	if sp.janitor != nil {
		if err := sp.janitor.Shutdown(); err != nil {
			log.Error().Err(err).Msg("janitor shutdown")
		}
	}

	if sp.dbClient != nil {
		sp.dbClient.Close()
	}

	log.Info().Msg("stopped")
}
