package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"accountkeeper/internal/router"
)

// NotFoundModel is the catch-all page for unknown fragments.
type NotFoundModel struct{}

func NewNotFoundModel() *NotFoundModel {
	return &NotFoundModel{}
}

func (m *NotFoundModel) Init() tea.Cmd {
	return nil
}

func (m *NotFoundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
		return m, func() tea.Msg { return NavigateTo{Fragment: router.FragmentLogin} }
	}
	return m, nil
}

func (m *NotFoundModel) View() string {
	return renderPage("PAGE NOT FOUND",
		"There is nothing at this address.",
		"enter: go to sign in")
}
