package service

import (
	"context"

	"accountkeeper/models"
)

// AccountService is the session and account state machine of the
// application. It owns the in-memory "who is logged in" mirror, mediates
// between the pages and the store, and reports every failure as a
// user-displayable error.
type AccountService interface {
	// Login authenticates against the stored account list using the
	// normalized (trimmed, lowercased) email and trimmed password. On
	// success the session is set and persisted; on failure the state stays
	// anonymous and [ErrInvalidCredentials] is returned.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Register validates all four fields in order (name, email, password,
	// confirmation, then email uniqueness) and appends the new account.
	// The caller is NOT logged in afterwards.
	Register(ctx context.Context, name, email, password, confirm string) error

	// UpdateProfile overwrites the current user's name and password after
	// validating them. The email is immutable. Returns [ErrUserNotFound]
	// when the session does not reference a stored account; the store is
	// left untouched on any failure.
	UpdateProfile(ctx context.Context, name, password string) error

	// Logout unconditionally clears the session, in memory and in the store.
	Logout(ctx context.Context)

	// Session returns the current session marker, nil when anonymous.
	Session() *models.Session

	// CurrentUser re-validates the session against the store and returns
	// the referenced account. The second return is false when anonymous or
	// when the session dangles; a dangling session is NOT cleared.
	CurrentUser(ctx context.Context) (models.UserRecord, bool)
}
