// Package server initializes and runs the backend application: it selects
// the storage backend, applies migrations, and drives the HTTP server with
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/nanosensei/backend/internal/logging"
	"github.com/nanosensei/backend/internal/server/config"
	"github.com/nanosensei/backend/internal/server/httpapi"
	"github.com/nanosensei/backend/internal/server/repositories/repomanager"
	"github.com/nanosensei/backend/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	repos    repomanager.RepositoryManager
	users    *services.UserService
	sessions *services.SessionService
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	var repos repomanager.RepositoryManager
	if c.DatabaseDSN == config.MemDSN {
		repos = repomanager.NewInMemoryRepositoryManager()
	} else {
		pg, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		repos = pg
	}

	return &App{
		config:   c,
		logger:   logger,
		repos:    repos,
		users:    services.NewUserService(repos),
		sessions: services.NewSessionService(repos),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger, app.users, app.sessions, app.config.ShutdownTimeout)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if err := app.repos.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err.Error())
		return
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if closer, ok := app.repos.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			app.logger.Error(ctx, "error closing storage", "error", err.Error())
		}
	}
}
