package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tobin/ripple-api/internal/config"
	"github.com/tobin/ripple-api/internal/platform/postgres"
	"github.com/tobin/ripple-api/internal/service"
	"github.com/tobin/ripple-api/internal/service/auth"
	"github.com/tobin/ripple-api/internal/store"
)

// application holds the shared application dependencies to simplify
// wiring and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces, so tests can substitute in-memory versions)
	userStore   store.UserStore
	followStore store.FollowStore
	postStore   store.PostStore

	// Services
	jwtService    auth.JWTService
	userService   service.UserService
	socialService service.SocialService
	postService   service.PostService
	feedService   service.FeedService
}

// newApplication wires all dependencies. The configuration, logger,
// and database connection must already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, logger)
	app.followStore = postgres.NewPostgresFollowStore(db, logger)
	app.postStore = postgres.NewPostgresPostStore(db, logger)

	app.userService = service.NewUserService(
		app.userStore,
		app.followStore,
		app.postStore,
		hasher,
		db,
		logger,
	)
	app.socialService = service.NewSocialService(app.followStore, logger)
	app.postService = service.NewPostService(app.postStore, logger)
	app.feedService = service.NewFeedService(app.followStore, app.postStore, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run applies pending migrations, then starts the HTTP server and
// blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	if err := postgres.RunMigrations(ctx, app.db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.logger.Info("Database migrations applied")

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
