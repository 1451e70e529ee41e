package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/codebook-vault/internal/config"
	"github.com/MKhiriev/codebook-vault/internal/logger"
	"github.com/MKhiriev/codebook-vault/internal/service"
	"github.com/MKhiriev/codebook-vault/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.Services
	logger    *logger.Logger
	version   string
	generator config.Generator
}

func New(services *service.Services, log *logger.Logger, version string, generator config.Generator) (*TUI, error) {
	return &TUI{services: services, logger: log, version: version, generator: generator}, nil
}

// LoginFlow runs the menu/login/register pages until the user authenticates
// or quits. On success it returns the started session and the codebooks
// fetched during login.
func (t *TUI) LoginFlow(ctx context.Context) (*session, []models.Codebook, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(t.version),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return nil, nil, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return nil, nil, ErrUserQuit
	}

	s := newSession(result.resultUsername, result.resultPassword)
	t.logger.Info().Str("session", s.id).Str("username", s.username).Msg("session started")

	return s, result.resultCodebooks, nil
}

// MainLoop runs the vault screens for one authenticated session. It returns
// logout=true when the user logged out (the login flow should run again) and
// false when the user quit the program.
func (t *TUI) MainLoop(ctx context.Context, s *session, codebooks []models.Codebook) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services.VaultService, s, codebooks, t.generator)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()

	s.clear()
	t.logger.Info().Str("session", s.id).Msg("session ended")

	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
