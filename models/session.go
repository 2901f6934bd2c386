package models

// Session marks which user, if any, is currently authenticated. It is
// persisted as the "app.session" record of the key-value store; a nil
// *Session means anonymous and the record is absent from the store.
//
// A session is a bare marker: its presence implies authenticated state.
// It should reference an existing UserRecord but may dangle (the referenced
// user is re-validated on each account view, not at load time).
type Session struct {
	// Email of the authenticated user, always the stored (trimmed,
	// lowercased) form.
	Email string `json:"email"`
}
