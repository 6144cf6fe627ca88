// Package server wires the SNS platform backend together: configuration,
// logging, the database pool and migrations, services, and the HTTP and
// gRPC servers with graceful shutdown.
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

	"github.com/dmitrijs2005/snsplatform/internal/dbx"
	"github.com/dmitrijs2005/snsplatform/internal/logging"
	"github.com/dmitrijs2005/snsplatform/internal/server/config"
	"github.com/dmitrijs2005/snsplatform/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/snsplatform/internal/server/rest"
	"github.com/dmitrijs2005/snsplatform/internal/server/services"

	gs "github.com/dmitrijs2005/snsplatform/internal/server/grpc"
)

// Seams for tests.
var (
	openDB = func(ctx context.Context, dsn string) (*sql.DB, error) {
		return dbx.Open(ctx, dsn, dbx.DefaultPoolOptions)
	}
	newRepositoryManager = func() repomanager.RepositoryManager {
		return repomanager.NewPostgresRepositoryManager()
	}
	logOutput io.Writer = os.Stdout
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	userService  *services.UserService
	mediaService *services.MediaService
}

// NewApp opens and migrates the database and builds the services. The
// caller owns the App and must call Run, which closes the pool on exit.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	db, err := openDB(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		repomanager:  rm,
		userService:  services.NewUserService(db, rm),
		mediaService: services.NewMediaService(db, rm, c),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) newHTTPServer() *rest.HTTPServer {
	h := rest.NewHandler(app.userService, app.mediaService, app.logger, rest.Options{
		FrontendURL:    app.config.FrontendURL,
		Environment:    app.config.Environment,
		MaxBodyBytes:   app.config.MaxBodyBytes,
		RequestTimeout: app.config.RequestTimeout,
	})
	return rest.NewHTTPServer(app.config.HTTPAddr, h, app.logger, app.config.ShutdownTimeout)
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.newHTTPServer().Run(ctx); err != nil {
		app.logger.Error(ctx, "http server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.db, app.config.HealthCheckInterval)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "grpc server failed", "error", err)
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or one of
// the servers fails, then waits for both servers and closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "environment", app.config.Environment)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	if app.config.GRPCAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startGRPCServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
