// Package server wires configuration, storage, services and transports into
// the running application and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/studentsapi/internal/logging"
	"github.com/dmitrijs2005/studentsapi/internal/server/config"
	"github.com/dmitrijs2005/studentsapi/internal/server/httpapi"
	"github.com/dmitrijs2005/studentsapi/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studentsapi/internal/server/services"

	gs "github.com/dmitrijs2005/studentsapi/internal/server/grpc"
)

var logOutput io.Writer = os.Stdout

type App struct {
	config         *config.Config
	logger         logging.Logger
	db             *sql.DB
	sessionService *services.SessionService
	studentService *services.StudentService
	exportService  *services.ExportService
}

// openStorage returns the repository manager for the configured backend
// with its schema in place. The memory backend has no *sql.DB.
func openStorage(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, *sql.DB, error) {
	switch c.Storage {
	case config.StorageMemory:
		return repomanager.NewMemoryRepositoryManager(), nil, nil
	case config.StoragePostgres:
		db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		m := repomanager.NewPostgresRepositoryManager()
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		return m, db, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage %q", c.Storage)
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	m, db, err := openStorage(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	ss := services.NewSessionService(db, m, c)
	st := services.NewStudentService(db, m)
	ex := services.NewExportService(st, c)

	app := &App{
		config:         c,
		logger:         logger.With("module", "app"),
		db:             db,
		sessionService: ss,
		studentService: st,
		exportService:  ex,
	}

	if err := app.bootstrapUser(ctx); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// bootstrapUser provisions the configured account unless it already exists.
func (app *App) bootstrapUser(ctx context.Context) error {
	if !app.config.HasBootstrapUser() {
		return nil
	}
	_, created, err := app.sessionService.EnsureUser(ctx,
		app.config.BootstrapUserName, app.config.BootstrapUserEmail, app.config.BootstrapUserPassword)
	if err != nil {
		return fmt.Errorf("bootstrap user: %w", err)
	}
	if created {
		app.logger.Info(ctx, "bootstrap user created", "email", app.config.BootstrapUserEmail)
	}
	return nil
}

func (app *App) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "error closing db", "error", err.Error())
		}
	}
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessionService, app.studentService, app.exportService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.sessionService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run starts both servers and blocks until ctx is cancelled, a shutdown
// signal arrives or either server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	defer app.Close()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
	app.logger.Info(context.Background(), "App stopped")
}
