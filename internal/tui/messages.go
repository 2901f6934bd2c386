package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"accountkeeper/models"
)

// NavigateTo asks [RootModel] to move the router to another fragment.
// Payload, when set, is delivered to the destination page after the switch.
type NavigateTo struct {
	Fragment string
	Payload  tea.Msg
}

// loginResultMsg is produced by the async login command. Attempt ties the
// result to the submission that started it so a stale delayed result cannot
// overwrite a newer one.
type loginResultMsg struct {
	attempt uuid.UUID
	session models.Session
	err     error
}

// registerResultMsg is produced by the async registration command.
type registerResultMsg struct {
	email string
	err   error
}

// registerSuccessNotice is carried to the login page after a successful
// registration.
type registerSuccessNotice struct {
	Email string
}

// profileLoadedMsg delivers the account referenced by the current session to
// the account page. ok is false when anonymous or when the session dangles.
type profileLoadedMsg struct {
	user models.UserRecord
	ok   bool
}

// profileSavedMsg is produced by the async profile-save command.
type profileSavedMsg struct {
	err error
}

// copiedMsg reports the outcome of copying the email to the clipboard.
type copiedMsg struct {
	err error
}
