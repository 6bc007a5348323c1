package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"workday/internal/adapters/notification"
	"workday/internal/adapters/storage"
	"workday/internal/config"
	"workday/internal/domain"
	"workday/internal/ports"
	"workday/internal/timer"
)

// appDeps groups all dependencies initialized at startup.
type appDeps struct {
	paths    config.Paths
	config   *config.Config
	storage  ports.Storage
	telegram *notification.Telegram
	notifier ports.Notifier
	timer    *timer.Client
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up storage, notifiers, and the timer client.
// It succeeds even before "workday setup" has run; commands that need a
// completed setup call requireSetup themselves.
func initializeServices() error {
	var err error
	if baseDir != "" {
		app.paths = config.NewPaths(baseDir)
	} else {
		app.paths, err = config.DefaultPaths()
		if err != nil {
			return err
		}
	}
	if err := app.paths.EnsureDir(); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	app.config, err = config.Load(app.paths)
	if err != nil {
		// Load already fell back to defaults; a broken config file
		// should not block the timer.
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}

	app.storage, err = storage.New(app.paths.DBFile)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.telegram = notification.NewTelegram(app.config.Telegram)
	app.notifier = notification.NewMulti(app.telegram, notification.NewDesktop(true))
	app.timer = timer.NewClient(app.paths)

	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.storage != nil {
		return app.storage.Close()
	}
	return nil
}

// requireSetup guards commands that need a completed initial setup.
func requireSetup() error {
	if !app.paths.IsConfigured() {
		return fmt.Errorf("%w: run \"workday setup\" first", domain.ErrNotConfigured)
	}
	return nil
}

// todayDate returns the current calendar date in the domain format.
func todayDate() string {
	return time.Now().Format(domain.DateFormat)
}

// currentDay returns today's day record, or nil if the day has not been
// started.
func currentDay(ctx context.Context) (*domain.Day, error) {
	return app.storage.Days().FindByDate(ctx, todayDate())
}
