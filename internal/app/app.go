package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-catalog/internal/catalog"
	"github.com/gokatarajesh/trivia-catalog/internal/config"
	"github.com/gokatarajesh/trivia-catalog/internal/db/repository"
	"github.com/gokatarajesh/trivia-catalog/internal/logging"
	"github.com/gokatarajesh/trivia-catalog/internal/server"
)

// Application aggregates shared infrastructure (DB, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	db   *sql.DB
	http *http.Server
}

// New bootstraps config, logger, Postgres and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.Postgres.MaxConns)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	questionRepo := repository.NewQuestionRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	catalogSvc := catalog.NewService(questionRepo, categoryRepo, logger)
	catalogHandlers := catalog.NewHTTPHandlers(catalogSvc, logger)

	apiServer := server.NewHTTPServer(cfg, logger, db, catalogHandlers)

	return &Application{
		cfg:    cfg,
		logger: logger,
		db:     db,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	if err := a.db.Close(); err != nil {
		a.logger.Error().Err(err).Msg("postgres shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
