package main

import (
	"context"
	"errors"
	"os"

	"github.com/moviemaster/mvx/internal/api"
	"github.com/moviemaster/mvx/internal/identity"
	"github.com/moviemaster/mvx/internal/session"
	"github.com/moviemaster/mvx/internal/shared"
	"github.com/moviemaster/mvx/internal/store"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	creds := store.NewCredentialRepository(db)
	order := store.NewOrderRepository(db)
	prefs := store.NewPrefsRepository(db)

	sessionCtx := session.NewContext(logger)
	defer sessionCtx.Close()

	opts := RunnerOpts{
		Config:  config,
		DB:      db,
		Session: sessionCtx,
		Prefs:   prefs,
		Order:   order,
		Logger:  logger,
	}

	// The adapter is optional so setup still works on an unconfigured machine.
	if config.Identity.BaseURL != "" {
		adapter, err := identity.NewProviderAdapter(identity.ProviderOpts{
			Credentials:  config.Identity.Map(),
			Store:        creds,
			Logger:       logger,
			CallbackHost: config.Server.Host,
			CallbackPort: config.Server.Port,
		})
		if err != nil {
			logger.Fatalf("failed to create identity adapter: %v", err)
		}
		defer adapter.Close()

		sessionCtx.Start(adapter.ObserveSession())
		adapter.Start()
		opts.Auth = adapter
	}

	opts.API = api.NewClient(api.ClientOpts{
		BaseURL:   config.API.BaseURL,
		Session:   sessionCtx,
		Logger:    logger,
		RateLimit: config.API.RateLimit,
	})

	runner := NewRunner(opts)

	app := &cli.Command{
		Name:     "mvx",
		Usage:    "Browse and curate the MovieMaster catalog from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
