package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"accountkeeper/internal/router"
	"accountkeeper/internal/service"
)

// RootModel drives the page flow:
// 1) keeps the active page in sync with the fragment router
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages, applying the auth gate
// 4) delegates all other messages to the active page
//
// The auth gate mirrors the redirect rule of the pages themselves: an
// authenticated user asking for the login or registration page lands on the
// account page instead.
type RootModel struct {
	router *router.Router
	svc    service.AccountService
	pages  map[router.Route]tea.Model

	current    tea.Model
	quitByUser bool
}

// NewRootModel registers all pages and opens the page the router currently
// points at, gate applied.
func NewRootModel(rt *router.Router, svc service.AccountService, pages map[router.Route]tea.Model) RootModel {
	r := RootModel{
		router: rt,
		svc:    svc,
		pages:  pages,
	}
	r.current = pages[r.gatedRoute()]
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.quit) {
		r.quitByUser = true
		return r, tea.Quit
	}

	if nav, ok := msg.(NavigateTo); ok {
		r.router.Navigate(nav.Fragment)

		next, exists := r.pages[r.gatedRoute()]
		if !exists {
			return r, nil
		}
		r.current = next

		if nav.Payload != nil {
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return nav.Payload })
		}
		return r, r.current.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == nil {
		return renderPage("ACCOUNT KEEPER", "", "")
	}
	return r.current.View()
}

// gatedRoute resolves the router's current route with the auth gate applied.
// Forced redirects move the router itself so the fragment stays truthful.
func (r RootModel) gatedRoute() router.Route {
	route := r.router.Current()
	if (route == router.RouteLogin || route == router.RouteRegister) && r.svc.Session() != nil {
		r.router.Navigate(router.FragmentAccount)
		return router.RouteAccount
	}
	return route
}
