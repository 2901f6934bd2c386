package client

import (
	"context"
	"errors"
	"fmt"

	"accountkeeper/internal/config"
	"accountkeeper/internal/logger"
	"accountkeeper/internal/router"
	"accountkeeper/internal/service"
	"accountkeeper/internal/store"
	"accountkeeper/internal/tui"
)

// App is the interactive client application. It owns the store handle and
// keeps the router, the account service, and the terminal UI wired together.
type App struct {
	cfg    *config.ClientConfig
	store  store.Store
	svc    service.AccountService
	router *router.Router
	ui     *tui.TUI
	logger *logger.Logger
}

// NewApp assembles the application from its configuration. The session
// persisted by a previous run is restored as part of service construction,
// so an already-authenticated user starts on the account page.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	st, err := store.NewStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	svc := service.NewAccountService(ctx, st, cfg.App, log)

	rt := router.New(cfg.App.InitialFragment)
	rt.Subscribe(func(route router.Route) {
		log.Debug().
			Stringer("route", route).
			Str("fragment", rt.Fragment()).
			Msg("navigated")
	})

	ui, err := tui.New(svc, rt, log)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:    cfg,
		store:  st,
		svc:    svc,
		router: rt,
		ui:     ui,
		logger: log,
	}, nil
}

// Run starts the terminal UI and blocks until the user exits. A Ctrl+C quit
// is a normal exit, not an error.
func (a *App) Run() error {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Error().Err(err).Msg("close local storage")
		}
	}()

	ctx := a.logger.WithContext(context.Background())

	a.logger.Info().
		Str("version", a.cfg.App.Version).
		Str("backend", a.cfg.Storage.Backend).
		Str("fragment", a.router.Fragment()).
		Msg("client started")

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("client exited")
		return nil
	}
	return err
}
