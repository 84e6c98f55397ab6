// Package app assembles the application: configuration, logging, storage,
// the domain facades and the interactive command loop.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nusclubs/clubconnect/pkg/logger"
)

// App represents the main application structure.
type App struct {
	serviceProvider *serviceProvider
}

// NewApp initializes the application and its dependencies.
func NewApp(ctx context.Context) (*App, error) {
	a := &App{}

	err := a.initDeps(ctx)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	return a, nil
}

// Run starts the command loop and blocks until the exit command, end of
// input, or a termination signal.
func (a *App) Run() {
	defer a.gracefulShutdown()

	logger.Log.Info("Club Connect starting")

	// Setup signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start periodic backups if enabled
	if a.serviceProvider.Cfg().Backup.Enabled() {
		if err := a.serviceProvider.Backup().Start(); err != nil {
			logger.Log.Errorf("failed to start backup scheduler: %v", err)
		}
	}

	// Run the command loop in a goroutine so signals can interrupt it
	done := make(chan error, 1)
	go func() {
		done <- a.serviceProvider.CLIHandler().Run()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Log.Errorf("command loop terminated: %v", err)
		}
	case sig := <-sigChan:
		logger.Log.Infof("Received signal %v, starting graceful shutdown...", sig)
	}
}

// gracefulShutdown handles cleanup of all resources
func (a *App) gracefulShutdown() {
	logger.Log.Info("Starting graceful shutdown...")

	if a.serviceProvider != nil {
		if a.serviceProvider.backup != nil {
			logger.Log.Info("Stopping backup scheduler...")
			a.serviceProvider.backup.Stop()
			logger.Log.Info("Backup scheduler stopped")
		}

		if a.serviceProvider.db != nil {
			logger.Log.Info("Closing database connection...")
			sqlDB, err := a.serviceProvider.db.DB()
			if err != nil {
				logger.Log.Errorf("Failed to get underlying sql.DB: %v", err)
			} else {
				if err := sqlDB.Close(); err != nil {
					logger.Log.Errorf("Error closing database connection: %v", err)
				} else {
					logger.Log.Info("Database connection closed")
				}
			}
		}
	}

	// Final log and cleanup
	logger.Log.Info("Graceful shutdown completed")

	// Close logger resources last
	if err := logger.Cleanup(); err != nil {
		// Can't log this error as logger is closing
		_ = err
	}
}

// initDeps initializes application dependencies
func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initServiceProvider,
		a.initLogger,
	}

	for _, f := range inits {
		err := f(ctx)
		if err != nil {
			return fmt.Errorf("init deps: %w", err)
		}
	}

	return nil
}

func (a *App) initServiceProvider(_ context.Context) error {
	a.serviceProvider = newServiceProvider()
	return nil
}

func (a *App) initLogger(_ context.Context) error {
	return logger.Init(logger.Config{
		Debug:     a.serviceProvider.cfg.Logger.Debug(),
		LogToFile: a.serviceProvider.cfg.Logger.LogToFile(),
		LogsDir:   a.serviceProvider.cfg.Logger.LogsDir(),
	})
}
