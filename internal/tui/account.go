package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"accountkeeper/internal/router"
	"accountkeeper/internal/service"
)

// AccountModel is the Bubble Tea model for the account page. For an
// authenticated user it renders the read-only email next to editable name and
// password inputs; saving overwrites the profile. When the session is absent
// or references a deleted account the page degrades to a sign-in prompt
// instead of erroring out.
type AccountModel struct {
	ctx context.Context
	svc service.AccountService

	email      string
	authorized bool

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	status     string
}

// NewAccountModel creates an [AccountModel]. The profile itself is loaded by
// Init on every visit so edits from a previous visit never leak through.
func NewAccountModel(ctx context.Context, svc service.AccountService) *AccountModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.Width = 40
	nameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &AccountModel{
		ctx:    ctx,
		svc:    svc,
		inputs: []textinput.Model{nameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Reloads the profile from the store.
func (m *AccountModel) Init() tea.Cmd {
	m.errMsg = ""
	m.status = ""
	m.submitting = false
	return tea.Batch(textinput.Blink, m.cmdLoad())
}

// Update implements [tea.Model]. Handled messages:
//   - [profileLoadedMsg] — prefills the form, or switches to the sign-in
//     prompt when no account backs the session.
//   - [profileSavedMsg]  — shows the validation error or a saved notice.
//   - [copiedMsg]        — confirms the email hit the clipboard.
//   - ctrl+l             — logs out and navigates to the login page.
//   - ctrl+e             — copies the email to the clipboard.
//   - tab / shift+tab    — moves focus between inputs.
//   - enter              — saves the profile; on the sign-in prompt it
//     navigates to the login page instead.
//
// All other key events are forwarded to the focused input widget.
func (m *AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.authorized = msg.ok
		if !msg.ok {
			return m, nil
		}
		m.email = msg.user.Email
		m.inputs[0].SetValue(msg.user.Name)
		m.inputs[1].SetValue(msg.user.Password)
		m.focusField(0)
		return m, nil

	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Profile saved"
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Email copied to clipboard"
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	if !m.authorized {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.toLogin) {
			return m, func() tea.Msg { return NavigateTo{Fragment: router.FragmentLogin} }
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.copyEmail):
		return m, m.cmdCopyEmail()
	case key.Matches(keyMsg, keys.tab):
		m.focusField((m.focus + 1) % len(m.inputs))
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.focusField((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		m.submitting = true
		return m, m.cmdSave(m.inputs[0].Value(), m.inputs[1].Value())
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *AccountModel) View() string {
	if !m.authorized {
		return renderPage("ACCOUNT",
			"You must sign in to view this page.",
			"enter: go to sign in")
	}

	var b strings.Builder
	b.WriteString(renderStatus(m.status))
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ ")
	b.WriteString(m.email)
	b.WriteString("\n")
	b.WriteString("Name      │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("ACCOUNT", strings.TrimRight(b.String(), "\n"),
		"enter: save │ tab: next field │ ctrl+e: copy email │ ctrl+l: sign out")
}

func (m *AccountModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		user, ok := svc.CurrentUser(ctx)
		return profileLoadedMsg{user: user, ok: ok}
	}
}

func (m *AccountModel) cmdSave(name, password string) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		return profileSavedMsg{err: svc.UpdateProfile(ctx, name, password)}
	}
}

func (m *AccountModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		svc.Logout(ctx)
		return NavigateTo{Fragment: router.FragmentLogin}
	}
}

func (m *AccountModel) cmdCopyEmail() tea.Cmd {
	email := m.email

	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(email)}
	}
}

func (m *AccountModel) focusField(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
