// Package tui implements the interactive terminal front end for the pwdman
// client: the login ceremony (password, optional second factor, optional
// PIN) and a small authenticated menu. All credential decisions live in the
// service layer; the TUI only renders states and forwards input.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pwdman/pwdman-client/internal/logger"
	"github.com/pwdman/pwdman-client/internal/service"
)

// TUI drives the bubbletea program.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

// New constructs the terminal UI on top of the client services.
func New(services *service.ClientServices, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// Run blocks until the user quits. initial is the ceremony state derived by
// the auth state machine during bootstrap, so a silently re-authenticated
// device starts at the menu (or PIN prompt) instead of the login form.
func (t *TUI) Run(ctx context.Context, initial service.State) error {
	program := tea.NewProgram(newAppModel(ctx, t.services, initial))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
