package main

import (
	"context"
	"fmt"
	"os"

	"github.com/moviemaster/mvx/internal/shared"
	"github.com/moviemaster/mvx/internal/signals"
	"github.com/moviemaster/mvx/internal/store"
	"github.com/urfave/cli/v3"
)

// SetupDatabase initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return nil
}

// SetupConfig writes a config.toml from the embedded template.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("✓ Config file created at %s\n", path)
	r.writePlain("Edit the identity and api sections before signing in.\n")
	return nil
}

// Theme shows the current display theme, or sets it when a name is given.
func (r *Runner) Theme(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")

	if name == "" {
		current, err := r.prefs.Get(store.PrefTheme, r.config.Theme.Name)
		if err != nil {
			return err
		}
		return r.writePlain("Theme: %s\n", current)
	}

	if name != "dark" && name != "light" {
		return fmt.Errorf("%w: theme must be dark or light", shared.ErrInvalidArgument)
	}

	if err := r.prefs.Set(store.PrefTheme, name); err != nil {
		return err
	}

	r.bus.Emit(signals.ThemeChanged)
	return r.writePlain("✓ Theme set to %s\n", name)
}
