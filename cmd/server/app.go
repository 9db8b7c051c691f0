package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskhive/taskhive/internal/config"
	"github.com/taskhive/taskhive/internal/heartbeat"
	"github.com/taskhive/taskhive/internal/platform/logger"
	"github.com/taskhive/taskhive/internal/platform/postgres"
	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/internal/service/auth"
	"github.com/taskhive/taskhive/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService  auth.JWTService
	authService service.AuthService
	taskService service.TaskService

	heartbeatRunner *heartbeat.Runner
}

// initializeApp loads configuration, sets up logging, connects to the
// database, runs pending migrations and wires every service together.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		closeDatabase(db, appLogger)
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDatabase(db, appLogger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	taskStore := postgres.NewPostgresTaskStore(db, appLogger)
	txRunner := store.NewSQLTxRunner(db)

	hasher := auth.NewBcryptHasher(0)

	app := &application{
		config:      cfg,
		logger:      appLogger,
		db:          db,
		userStore:   userStore,
		taskStore:   taskStore,
		jwtService:  jwtService,
		authService: service.NewAuthService(userStore, txRunner, hasher, hasher, appLogger),
		taskService: service.NewTaskService(taskStore, txRunner, appLogger),
		heartbeatRunner: heartbeat.NewRunner(
			time.Duration(cfg.Heartbeat.IntervalSeconds)*time.Second,
			appLogger,
		),
	}

	return app, nil
}

// run starts the background heartbeat and the HTTP server, blocking until
// shutdown completes.
func (app *application) run() error {
	app.heartbeatRunner.Start()

	return app.startHTTPServer(app.setupRouter())
}

// cleanup releases resources held by the application. Called once during
// graceful shutdown.
func (app *application) cleanup() {
	app.heartbeatRunner.Stop()
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}
