package factory

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/arcadelab/wavearena-go/internal/dependencies/clock"
	"github.com/arcadelab/wavearena-go/internal/services/auth"
	"github.com/arcadelab/wavearena-go/internal/services/progress"
	"github.com/arcadelab/wavearena-go/internal/storage"
	"github.com/arcadelab/wavearena-go/internal/storage/memory"
	"github.com/arcadelab/wavearena-go/internal/storage/postgres"
	redisstorage "github.com/arcadelab/wavearena-go/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Users     storage.UserStore
	Progress  storage.ProgressStore
	Sessions  storage.SessionStore
	DB        *postgres.Storage
	SessionDB *redisstorage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AuthService     *auth.Service
	ProgressService *progress.Service
}

// Config holds configuration for the application factory
type Config struct {
	// DatabaseURL is the Postgres DSN for users and progress
	// If empty, an in-memory store is used
	DatabaseURL string
	// RedisConfig holds Redis connection settings for sessions (optional)
	// If nil, sessions are kept in the in-memory store
	RedisConfig *redisstorage.Config
	// AuthConfig holds configuration for the auth service (optional)
	// Zero fields fall back to auth.DefaultConfig values
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	app := &App{
		Clock: clock.New(),
	}

	// Users and progress live in Postgres when a DSN is configured
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := db.RunMigrations(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		app.DB = db
		app.Users = db
		app.Progress = db
	}

	// Sessions live in Redis when configured
	if cfg.RedisConfig != nil {
		sessions, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			if app.DB != nil {
				app.DB.Close()
			}
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		app.SessionDB = sessions
		app.Sessions = sessions
	}

	// Fall back to a shared in-memory store for anything unconfigured
	if app.Users == nil || app.Sessions == nil {
		mem := memory.New()
		if app.Users == nil {
			app.Users = mem
			app.Progress = mem
		}
		if app.Sessions == nil {
			app.Sessions = mem
		}
	}

	// auth.New fills in defaults for any zero fields
	app.AuthService = auth.New(app.Users, app.Sessions, app.Clock, cfg.AuthConfig, logger)
	app.ProgressService = progress.New(app.Progress, logger)

	return app, nil
}

// Close releases any external connections held by the application
func (a *App) Close() error {
	var firstErr error
	if a.SessionDB != nil {
		if err := a.SessionDB.Close(); err != nil {
			firstErr = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
