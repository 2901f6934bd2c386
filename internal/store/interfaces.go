package store

import (
	"context"

	"accountkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Logical record keys inside the key-value collaborator. These names are
// part of the store's external shape; existing saved data is keyed by them.
const (
	// KeyUsers holds the JSON array of registered accounts.
	KeyUsers = "app.users"
	// KeySession holds the JSON session marker, absent when anonymous.
	KeySession = "app.session"
)

// KV is the external persistent key-value collaborator. Implementations are
// expected to be safe for use from a single goroutine at a time; each call
// fully overwrites its record (last write wins, no transactions).
type KV interface {
	// Get returns the raw value for key, reporting absence via the bool.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set persists value under key, replacing any prior value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the backend.
	Close() error
}

// Store is the adapter over [KV] that serializes the two logical records of
// the application. Read methods never fail: absent, unparsable, or
// wrongly-shaped data comes back as the safe empty default, and write
// failures are logged rather than surfaced, so callers see storage as
// infallible.
type Store interface {
	// ReadUsers returns the stored account list, or an empty slice when the
	// record is absent or corrupted.
	ReadUsers(ctx context.Context) []models.UserRecord
	// WriteUsers replaces the stored account list.
	WriteUsers(ctx context.Context, users []models.UserRecord)
	// ReadSession returns the stored session marker, or nil when absent or
	// corrupted.
	ReadSession(ctx context.Context) *models.Session
	// WriteSession persists a non-nil session and deletes the record for a
	// nil one.
	WriteSession(ctx context.Context, session *models.Session)
	// Close releases the underlying key-value backend.
	Close() error
}
