// Package app initializes and runs the server: it wires configuration,
// storage, services and the HTTP transport, and handles graceful
// shutdown.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alumnihub/alumnihub/internal/accounts"
	"github.com/alumnihub/alumnihub/internal/auth"
	"github.com/alumnihub/alumnihub/internal/config"
	"github.com/alumnihub/alumnihub/internal/httpapi"
	"github.com/alumnihub/alumnihub/internal/logging"
	"github.com/alumnihub/alumnihub/internal/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *http.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := migrations.Up(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	repo := accounts.NewPostgresRepository(db)
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.TokenValidityDuration)
	authService := auth.NewService(repo, hasher, tokens, logger)

	handler := httpapi.NewHandler(authService, repo, logger)
	router := httpapi.NewRouter(handler, httpapi.RequireAuth(tokens, logger), cfg.CORSAllowedOrigins, logger)

	server := &http.Server{
		Addr:    cfg.EndpointAddrHTTP,
		Handler: router,
	}

	return &App{config: cfg, logger: logger, db: db, server: server}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run starts the HTTP server and blocks until the context is cancelled or
// an OS signal arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting HTTP server", "address", app.config.EndpointAddrHTTP)
		if err := app.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := app.db.Close(); err != nil {
		return fmt.Errorf("db close error: %w", err)
	}

	app.logger.Info(ctx, "Server stopped cleanly")
	return nil
}
