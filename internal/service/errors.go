package service

import "errors"

// Account-flow errors. Like the validator errors these double as display
// strings shown directly on the forms.
var (
	// ErrInvalidCredentials is returned by Login when no account matches
	// the normalized email/password pair. Deliberately does not say which
	// half was wrong.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrEmailTaken is returned by Register when an account with the same
	// normalized email already exists.
	ErrEmailTaken = errors.New("A user with this email already exists")

	// ErrUserNotFound is returned by UpdateProfile when the session's email
	// has no matching stored account (dangling session). Recoverable - the
	// caller keeps editing.
	ErrUserNotFound = errors.New("User not found")
)
