package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"accountkeeper/internal/logger"
	"accountkeeper/internal/router"
	"accountkeeper/internal/service"
)

// ErrUserQuit is returned by Run when the user exits with Ctrl+C.
var ErrUserQuit = errors.New("quit by user")

// TUI is the terminal front end. It owns the page models and runs the Bubble
// Tea program around [RootModel].
type TUI struct {
	svc    service.AccountService
	router *router.Router
	logger *logger.Logger
}

func New(svc service.AccountService, rt *router.Router, log *logger.Logger) (*TUI, error) {
	if svc == nil || rt == nil {
		return nil, errors.New("tui: service and router are required")
	}
	return &TUI{svc: svc, router: rt, logger: log}, nil
}

// Run builds the page set, starts the program, and blocks until exit.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[router.Route]tea.Model{
		router.RouteLogin:    NewLoginModel(ctx, t.svc),
		router.RouteRegister: NewRegisterModel(ctx, t.svc),
		router.RouteAccount:  NewAccountModel(ctx, t.svc),
		router.RouteNotFound: NewNotFoundModel(),
	}

	root := NewRootModel(t.router, t.svc, pages)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
