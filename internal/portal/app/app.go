package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	httpapi "github.com/yklabs/portal/internal/portal/http"
	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/internal/portal/store"
	"github.com/yklabs/portal/internal/portal/store/drivers/memory"
	"github.com/yklabs/portal/internal/portal/store/drivers/sqlite"
	"github.com/yklabs/portal/pkg/jwtx"
	"github.com/yklabs/portal/pkg/metricsx"
	"github.com/yklabs/portal/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the portal service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	registry *prometheus.Registry
	metrics  *metricsx.Collector

	// Services
	authService      *service.AuthService
	userService      *service.UserService
	courseService    *service.CourseService
	ticketService    *service.TicketService
	statsService     *service.StatsService
	bootstrapService *service.BootstrapService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "portal",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initStore(); err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.db.Ping(pingCtx); err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("store unreachable: %w", err)
	}

	app.signer = &jwtx.HS256Signer{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.Issuer,
		TTL:    cfg.TokenTTL,
	}
	app.verifier = &jwtx.HS256Verifier{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.Issuer,
	}

	app.registry = prometheus.NewRegistry()
	app.metrics = metricsx.NewCollector(app.registry)

	app.initServices()

	if cfg.SeedDemoData {
		ctx := slogx.WithContext(context.Background(), app.logger)
		if err := app.bootstrapService.SeedDemoData(ctx); err != nil {
			_ = app.db.Close()
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("portal starting",
		"port", app.cfg.Port,
		"store", app.cfg.StoreDriver,
		"version", BuildVersion,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down portal...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("portal stopped")
	return nil
}

// initStore selects and initializes the store driver.
func (app *Application) initStore() error {
	switch app.cfg.StoreDriver {
	case "memory":
		app.db = memory.NewStore()
		app.logger.Info("using in-memory store")
		return nil

	case "sqlite":
		dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
		db, err := sqlite.NewStore(dsn)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		app.db = db

		if err := db.ApplyMigrations(); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to apply database migrations: %w", err)
		}

		app.logger.Info("database migrations applied successfully", "file", app.cfg.DatabaseFile)
		return nil

	default:
		return fmt.Errorf("unknown store driver %q", app.cfg.StoreDriver)
	}
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:  app.db,
		Signer: app.signer,
	}
	app.userService = &service.UserService{Store: app.db}
	app.courseService = &service.CourseService{Store: app.db}
	app.ticketService = &service.TicketService{Store: app.db}
	app.statsService = &service.StatsService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{Store: app.db}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		BuildVersion,
		app.metrics,
		app.registry,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.CourseService = app.courseService
	router.TicketService = app.ticketService
	router.StatsService = app.statsService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
