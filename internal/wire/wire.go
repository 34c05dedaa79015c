// Package wire provides dependency injection for the breach tracker.
// It builds an App owning the store handle; presentation layers receive the
// App's services and must Close it on every exit path.
package wire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	cliadapter "github.com/example/breachtracker/internal/adapters/cli"
	"github.com/example/breachtracker/internal/adapters/sqlite"
	"github.com/example/breachtracker/internal/app"
	"github.com/example/breachtracker/internal/config"
	"github.com/example/breachtracker/internal/logging"
	"github.com/example/breachtracker/internal/ports/primary"
)

// App holds the wired services for one process.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Breaches primary.BreachService

	repo      *sqlite.BreachRepository
	logCloser io.Closer
	closed    bool
}

// Open initializes logging and the breach store described by cfg, and
// wires the services on top of them.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, logCloser, err := logging.New(logging.Options{
		File:  cfg.LogFile,
		Level: cfg.SlogLevel(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create repository adapters (secondary ports)
	breachRepo, err := sqlite.OpenBreachRepository(ctx, cfg.DBPath)
	if err != nil {
		logger.Error("failed to open breach store", "path", cfg.DBPath, "error", err)
		logCloser.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	logger.Info("breach store opened", "path", cfg.DBPath)

	// Create services (primary ports implementation)
	breachService := app.NewBreachService(breachRepo, logger)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Breaches:  breachService,
		repo:      breachRepo,
		logCloser: logCloser,
	}, nil
}

// Close releases the store and flushes the log file. Safe to call more than once.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	repoErr := a.repo.Close()
	if repoErr != nil {
		a.Logger.Error("failed to close breach store", "error", repoErr)
	} else {
		a.Logger.Info("breach store closed")
	}
	return errors.Join(repoErr, a.logCloser.Close())
}

// BreachAdapter returns a new BreachAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func (a *App) BreachAdapter() *cliadapter.BreachAdapter {
	return a.BreachAdapterWithOutput(os.Stdout)
}

// BreachAdapterWithOutput returns a new BreachAdapter writing to the given output.
func (a *App) BreachAdapterWithOutput(out io.Writer) *cliadapter.BreachAdapter {
	return cliadapter.NewBreachAdapter(a.Breaches, out)
}
