package validators

import "errors"

// Validation errors double as user-facing display strings, so unlike the
// rest of the codebase they are capitalized full sentences.
var (
	// ErrNameTooShort is returned when a display name is shorter than
	// [MinNameLength] after trimming.
	ErrNameTooShort = errors.New("Name must be at least 2 characters long")

	// ErrInvalidEmail is returned when an email fails the permissive
	// "@" and "." shape check.
	ErrInvalidEmail = errors.New("Invalid email address")

	// ErrPasswordTooShort is returned when a password is shorter than
	// [MinPasswordLength] after trimming.
	ErrPasswordTooShort = errors.New("Password must be at least 4 characters long")

	// ErrPasswordMismatch is returned when the confirmation does not match
	// the password after trimming.
	ErrPasswordMismatch = errors.New("Passwords do not match")
)
