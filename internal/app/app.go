// Package app drives the interactive lifecycle of the vault: repeated
// login flow / main loop cycles until the user quits the program.
package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/codebook-vault/internal/logger"
	"github.com/MKhiriev/codebook-vault/internal/tui"
)

type App struct {
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, log *logger.Logger) (*App, error) {
	return &App{tui: ui, logger: log}, nil
}

// Run cycles between the login flow and the authenticated main loop.
// A logout returns to the login flow; quitting either loop ends the program.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		s, codebooks, err := a.tui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		logout, err := a.tui.MainLoop(ctx, s, codebooks)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}
