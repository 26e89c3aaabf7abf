// Package server wires the spende server together: configuration, the
// database and its migrations, services, the HTTP API and the gRPC health
// endpoint. It also handles graceful shutdown on SIGINT/SIGTERM/SIGQUIT.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/spende/internal/dbx"
	"github.com/dmitrijs2005/spende/internal/idgen"
	"github.com/dmitrijs2005/spende/internal/logging"
	"github.com/dmitrijs2005/spende/internal/server/config"
	"github.com/dmitrijs2005/spende/internal/server/httpapi"
	"github.com/dmitrijs2005/spende/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/spende/internal/server/services"
	"github.com/jmoiron/sqlx"

	gs "github.com/dmitrijs2005/spende/internal/server/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sqlx.DB
	httpServer *http.Server
	health     *gs.HealthServer
}

// NewApp validates c, opens and migrates the database and builds every
// component. Any error here is a fatal startup error.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, logging.NewJSONLogger(os.Stdout, slog.LevelInfo))
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := dbx.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	app, err := build(ctx, c, logger, db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func build(ctx context.Context, c *config.Config, logger logging.Logger, db *sqlx.DB) (*App, error) {
	rm, err := repomanager.NewSQLRepositoryManager(c.DatabaseDriver)
	if err != nil {
		return nil, err
	}
	if err := rm.RunMigrations(ctx, db.DB); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	ids, err := idgen.NewSonyflake(uint16(c.NodeID))
	if err != nil {
		return nil, err
	}

	us, err := services.NewUserService(db, rm, services.NewBcryptHasher(c.BcryptCost), ids, c)
	if err != nil {
		return nil, err
	}
	ws := services.NewWalletService(db, rm, ids)

	handler := httpapi.NewHandler(us, ws, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		APIPrefix:      c.APIPrefix,
		AllowedOrigins: c.AllowedOrigins,
		Metrics:        httpapi.NewMetrics(),
	})

	return &App{
		config: c,
		logger: logger,
		db:     db,
		httpServer: &http.Server{
			Addr:              c.EndpointAddrHTTP,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		health: gs.NewHealthServer(c.EndpointAddrGRPC, logger, db, c.HealthCheckInterval),
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := app.httpServer.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "http shutdown", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.httpServer.Addr)

	if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.health.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a signal arrives or a listener fails,
// then waits for both servers to stop and closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
