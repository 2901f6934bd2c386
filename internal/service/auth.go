package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"accountkeeper/internal/config"
	"accountkeeper/internal/logger"
	"accountkeeper/internal/store"
	"accountkeeper/internal/validators"
	"accountkeeper/models"
)

// accountService is the concrete implementation of [AccountService]. The
// session mirror is guarded by a mutex so that a delayed login resolving in
// a background command cannot race a logout from the UI loop.
type accountService struct {
	store      store.Store
	loginDelay time.Duration
	logger     *logger.Logger

	mu      sync.RWMutex
	session *models.Session
}

// NewAccountService constructs an [AccountService] wired to the given store.
// The in-memory session mirror is initialized from the store, so a session
// persisted by a previous run survives a restart.
func NewAccountService(ctx context.Context, st store.Store, cfg config.ClientApp, logger *logger.Logger) AccountService {
	return &accountService{
		store:      st,
		loginDelay: cfg.LoginDelay,
		logger:     logger,
		session:    st.ReadSession(ctx),
	}
}

// normalizeEmail trims surrounding whitespace and lowercases the address,
// the canonical stored form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *accountService) Login(ctx context.Context, email, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	email = normalizeEmail(email)
	password = strings.TrimSpace(password)

	if s.loginDelay > 0 {
		select {
		case <-time.After(s.loginDelay):
		case <-ctx.Done():
			return models.Session{}, ctx.Err()
		}
	}

	for _, user := range s.store.ReadUsers(ctx) {
		if normalizeEmail(user.Email) != email || strings.TrimSpace(user.Password) != password {
			continue
		}

		session := models.Session{Email: normalizeEmail(user.Email)}

		s.mu.Lock()
		s.session = &session
		s.mu.Unlock()

		s.store.WriteSession(ctx, &session)
		log.Info().Str("email", session.Email).Msg("user logged in")

		return session, nil
	}

	log.Debug().Str("email", email).Msg("login rejected")
	return models.Session{}, ErrInvalidCredentials
}

func (s *accountService) Register(ctx context.Context, name, email, password, confirm string) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateRegistration(name, email, password, confirm); err != nil {
		return err
	}

	normalized := normalizeEmail(email)
	users := s.store.ReadUsers(ctx)
	for _, user := range users {
		if normalizeEmail(user.Email) == normalized {
			log.Debug().Str("email", normalized).Msg("registration rejected, email taken")
			return ErrEmailTaken
		}
	}

	users = append(users, models.UserRecord{
		Name:     strings.TrimSpace(name),
		Email:    normalized,
		Password: strings.TrimSpace(password),
	})
	s.store.WriteUsers(ctx, users)
	log.Info().Str("email", normalized).Msg("user registered")

	return nil
}

func (s *accountService) UpdateProfile(ctx context.Context, name, password string) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateName(name); err != nil {
		return err
	}
	if err := validators.ValidatePassword(password); err != nil {
		return err
	}

	session := s.Session()
	if session == nil {
		return ErrUserNotFound
	}

	users := s.store.ReadUsers(ctx)
	for i := range users {
		if normalizeEmail(users[i].Email) != session.Email {
			continue
		}

		users[i].Name = strings.TrimSpace(name)
		users[i].Password = strings.TrimSpace(password)
		s.store.WriteUsers(ctx, users)
		log.Info().Str("email", session.Email).Msg("profile updated")

		return nil
	}

	log.Debug().Str("email", session.Email).Msg("profile update rejected, no matching account")
	return ErrUserNotFound
}

func (s *accountService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	s.store.WriteSession(ctx, nil)
	logger.FromContext(ctx).Info().Msg("user logged out")
}

func (s *accountService) Session() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}
	session := *s.session
	return &session
}

func (s *accountService) CurrentUser(ctx context.Context) (models.UserRecord, bool) {
	session := s.Session()
	if session == nil {
		return models.UserRecord{}, false
	}

	for _, user := range s.store.ReadUsers(ctx) {
		if normalizeEmail(user.Email) == session.Email {
			return user, true
		}
	}

	// Dangling session: the referenced account is gone. Kept as-is so the
	// account page can render its fallback; only Logout clears it.
	return models.UserRecord{}, false
}
