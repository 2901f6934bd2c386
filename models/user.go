package models

// UserRecord represents a single registered account as it is persisted in
// the "app.users" record of the key-value store. The JSON field names are
// part of the store's external shape and must not change, so that existing
// saved data keeps loading.
type UserRecord struct {
	// Name is the display name of the user. Stored trimmed;
	// must be at least 2 characters long.
	Name string `json:"name"`

	// Email is the unique account key. Stored trimmed and lowercased.
	// Uniqueness is enforced at registration time only; the field is
	// immutable after creation.
	Email string `json:"email"`

	// Password is the account password, stored as entered (trimmed).
	// The system deliberately performs plain-text comparison; there is
	// no hashing layer.
	Password string `json:"password"`
}
