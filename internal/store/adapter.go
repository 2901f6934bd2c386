package store

import (
	"context"
	"encoding/json"

	"accountkeeper/internal/logger"
	"accountkeeper/models"
)

// adapter is the default implementation of [Store]. It JSON-codes the two
// logical records over a [KV] backend and converts every storage failure
// into the safe empty default, logging the cause at warn level.
type adapter struct {
	kv     KV
	logger *logger.Logger
}

// NewAdapter wraps a key-value backend in the record-level [Store] adapter.
func NewAdapter(kv KV, logger *logger.Logger) Store {
	return &adapter{kv: kv, logger: logger}
}

// ReadUsers returns the account list stored under [KeyUsers]. Absent,
// unreadable, or non-array-shaped data yields an empty slice.
func (a *adapter) ReadUsers(ctx context.Context) []models.UserRecord {
	raw, found, err := a.kv.Get(ctx, KeyUsers)
	if err != nil {
		a.logger.Warn().Err(err).Str("key", KeyUsers).Msg("read failed, falling back to empty user list")
		return []models.UserRecord{}
	}
	if !found {
		return []models.UserRecord{}
	}

	var users []models.UserRecord
	if err := json.Unmarshal(raw, &users); err != nil {
		a.logger.Warn().Err(err).Str("key", KeyUsers).Msg("corrupted user list, falling back to empty")
		return []models.UserRecord{}
	}
	if users == nil {
		users = []models.UserRecord{}
	}

	return users
}

// WriteUsers replaces the account list under [KeyUsers]. Failures are
// logged and swallowed.
func (a *adapter) WriteUsers(ctx context.Context, users []models.UserRecord) {
	if users == nil {
		users = []models.UserRecord{}
	}

	raw, err := json.Marshal(users)
	if err != nil {
		a.logger.Error().Err(err).Str("key", KeyUsers).Msg("encode user list failed")
		return
	}

	if err := a.kv.Set(ctx, KeyUsers, raw); err != nil {
		a.logger.Error().Err(err).Str("key", KeyUsers).Msg("write user list failed")
	}
}

// ReadSession returns the session stored under [KeySession], or nil when the
// record is absent or unreadable.
func (a *adapter) ReadSession(ctx context.Context) *models.Session {
	raw, found, err := a.kv.Get(ctx, KeySession)
	if err != nil {
		a.logger.Warn().Err(err).Str("key", KeySession).Msg("read failed, treating session as absent")
		return nil
	}
	if !found {
		return nil
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		a.logger.Warn().Err(err).Str("key", KeySession).Msg("corrupted session, treating as absent")
		return nil
	}

	return &session
}

// WriteSession persists a non-nil session under [KeySession] and deletes the
// record for a nil one. Failures are logged and swallowed.
func (a *adapter) WriteSession(ctx context.Context, session *models.Session) {
	if session == nil {
		if err := a.kv.Delete(ctx, KeySession); err != nil {
			a.logger.Error().Err(err).Str("key", KeySession).Msg("delete session failed")
		}
		return
	}

	raw, err := json.Marshal(session)
	if err != nil {
		a.logger.Error().Err(err).Str("key", KeySession).Msg("encode session failed")
		return
	}

	if err := a.kv.Set(ctx, KeySession, raw); err != nil {
		a.logger.Error().Err(err).Str("key", KeySession).Msg("write session failed")
	}
}

func (a *adapter) Close() error {
	return a.kv.Close()
}
