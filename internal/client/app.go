// Package client assembles the pwdman client application: configuration,
// storages, the server adapter, the service layer, background workers and
// the terminal UI.
package client

import (
	"context"
	"fmt"

	"github.com/pwdman/pwdman-client/internal/config"
	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/internal/service"
	"github.com/pwdman/pwdman-client/internal/store"
	"github.com/pwdman/pwdman-client/internal/tui"
	"github.com/pwdman/pwdman-client/internal/workers"
)

// App owns the wired client components and their lifecycle.
type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp wires the application from an already-parsed configuration.
func NewApp(services *service.ClientServices, storages *store.ClientStorages, ui *tui.TUI, workersCfg config.Workers, log *logger.Logger) *App {
	inactivity := workers.NewInactivityWorker(services.Auth, services.Activity, workersCfg.IdleTimeout, log)

	return &App{
		services: services,
		storages: storages,
		ui:       ui,
		workers:  workers.NewWorkers(inactivity),
		logger:   log,
	}
}

// Run bootstraps the auth state machine from cached credentials, starts the
// background workers and hands control to the terminal UI. It blocks until
// the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	initial := a.services.Auth.Bootstrap(ctx)
	a.logger.Info().Stringer("state", initial).Msg("client bootstrapped")

	a.workers.Run(ctx)
	defer a.workers.Stop()

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Error().Err(err).Msg("close storages")
		}
	}()

	if err := a.ui.Run(ctx, initial); err != nil {
		return fmt.Errorf("run client app: %w", err)
	}
	return nil
}
