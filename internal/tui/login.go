package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"accountkeeper/internal/router"
	"accountkeeper/internal/service"
)

// LoginModel is the Bubble Tea model for the login page. It renders email and
// password inputs and dispatches an async login command on submission. Each
// submission carries a fresh attempt ID; results from earlier attempts are
// dropped so a slow artificial delay cannot resurrect an abandoned login.
type LoginModel struct {
	ctx context.Context
	svc service.AccountService

	inputs     []textinput.Model
	focus      int
	submitting bool
	attempt    uuid.UUID
	errMsg     string
	status     string
}

// NewLoginModel creates a [LoginModel] with pre-configured email and password
// inputs. The email field receives focus immediately; the password field uses
// masked echo.
func NewLoginModel(ctx context.Context, svc service.AccountService) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		svc:    svc,
		inputs: []textinput.Model{emailInput, passwordInput},
	}
}

// Init implements [tea.Model].
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [registerSuccessNotice] — shows the "account created" status line.
//   - [loginResultMsg]        — on success navigates to the account page;
//     on failure shows the error; stale attempts are ignored.
//   - ctrl+r                  — navigates to the registration page.
//   - tab / shift+tab         — moves focus between inputs.
//   - enter                   — dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case registerSuccessNotice:
		m.status = "Account " + msg.Email + " created, you can sign in now"
		return m, nil

	case loginResultMsg:
		if msg.attempt != m.attempt {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}

		m.resetForm()
		return m, func() tea.Msg { return NavigateTo{Fragment: router.FragmentAccount} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.toSignup):
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Fragment: router.FragmentRegister} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			password := strings.TrimSpace(m.inputs[1].Value())
			if email == "" || password == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			m.attempt = uuid.New()
			return m, m.cmdLogin(m.attempt, m.inputs[0].Value(), m.inputs[1].Value())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder

	b.WriteString(renderStatus(m.status))
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Email     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"),
		"enter: submit │ tab: next field │ ctrl+r: create account")
}

func (m *LoginModel) cmdLogin(attempt uuid.UUID, email, password string) tea.Cmd {
	ctx := m.ctx
	svc := m.svc

	return func() tea.Msg {
		session, err := svc.Login(ctx, email, password)
		return loginResultMsg{attempt: attempt, session: session, err: err}
	}
}

func (m *LoginModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
	m.errMsg = ""
	m.status = ""
	m.submitting = false
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
