package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"accountkeeper/internal/config"
	"accountkeeper/internal/logger"
	"accountkeeper/internal/mock"
	"accountkeeper/internal/store"
	"accountkeeper/internal/validators"
	"accountkeeper/models"
)

// newTestService builds an AccountService over a fresh in-memory store with
// the login delay disabled. The raw KV is returned so tests can inspect the
// stored bytes directly.
func newTestService(t *testing.T) (AccountService, store.Store, store.KV) {
	t.Helper()
	kv := store.NewMemoryKV()
	st := store.NewAdapter(kv, logger.Nop())
	svc := NewAccountService(context.Background(), st, config.ClientApp{}, logger.Nop())
	return svc, st, kv
}

func seedUsers(t *testing.T, st store.Store, users ...models.UserRecord) {
	t.Helper()
	st.WriteUsers(context.Background(), users)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	seedUsers(t, st, models.UserRecord{Name: "Jane Doe", Email: "jane@x.com", Password: "abcd"})

	session, err := svc.Login(ctx, "jane@x.com", "abcd")
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", session.Email)

	persisted := st.ReadSession(ctx)
	require.NotNil(t, persisted)
	assert.Equal(t, "jane@x.com", persisted.Email)
}

// TestLogin_NormalizesInput covers the scenario where the caller supplies an
// upper-cased email and a padded password against a normally stored record.
func TestLogin_NormalizesInput(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	seedUsers(t, st, models.UserRecord{Name: "Jane Doe", Email: "jane@x.com", Password: "abcd"})

	session, err := svc.Login(ctx, "JANE@X.COM", " abcd ")
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", session.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	seedUsers(t, st, models.UserRecord{Name: "Jane Doe", Email: "jane@x.com", Password: "abcd"})

	_, err := svc.Login(ctx, "jane@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, svc.Session())
	assert.Nil(t, st.ReadSession(ctx))
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@x.com", "abcd")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DelayHonoursContextCancellation(t *testing.T) {
	kv := store.NewMemoryKV()
	st := store.NewAdapter(kv, logger.Nop())
	svc := NewAccountService(context.Background(), st,
		config.ClientApp{LoginDelay: time.Minute}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.Login(ctx, "jane@x.com", "abcd")
	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "cancelled login must not wait out the delay")
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestRegister_ThenLogin(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Jane Doe", "Jane@X.com", "abcd", "abcd"))

	// registration must not auto-authenticate
	assert.Nil(t, svc.Session())

	session, err := svc.Login(ctx, "jane@x.com", "abcd")
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", session.Email)
}

func TestRegister_StoresNormalizedRecord(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "  Jane Doe  ", "  JANE@X.COM ", " abcd ", " abcd "))

	users := st.ReadUsers(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, models.UserRecord{Name: "Jane Doe", Email: "jane@x.com", Password: "abcd"}, users[0])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "Jane Doe", "jane@x.com", "abcd", "abcd"))

	err := svc.Register(ctx, "Other Jane", "  JANE@x.com ", "efgh", "efgh")
	require.ErrorIs(t, err, ErrEmailTaken)

	users := st.ReadUsers(ctx)
	require.Len(t, users, 1, "duplicate registration must not add a record")
	assert.Equal(t, "Jane Doe", users[0].Name)
}

func TestRegister_ValidationOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name                        string
		uname, email, pass, confirm string
		wantErr                     error
	}{
		{name: "short name", uname: "J", email: "j@x.com", pass: "abcd", confirm: "abcd", wantErr: validators.ErrNameTooShort},
		{name: "bad email", uname: "Jane", email: "jane", pass: "abcd", confirm: "abcd", wantErr: validators.ErrInvalidEmail},
		{name: "short password", uname: "Jane", email: "jane@x.com", pass: "abc", confirm: "abc", wantErr: validators.ErrPasswordTooShort},
		{name: "mismatch", uname: "Jane", email: "jane@x.com", pass: "abcd", confirm: "abce", wantErr: validators.ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, tt.uname, tt.email, tt.pass, tt.confirm)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── UpdateProfile ────────────────────────────────────────────────────────────

func TestUpdateProfile_Success(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	seedUsers(t, st, models.UserRecord{Name: "Jane Doe", Email: "jane@x.com", Password: "abcd"})
	_, err := svc.Login(ctx, "jane@x.com", "abcd")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateProfile(ctx, "Janet Doe", "efgh"))

	users := st.ReadUsers(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "Janet Doe", users[0].Name)
	assert.Equal(t, "efgh", users[0].Password)
	assert.Equal(t, "jane@x.com", users[0].Email, "email is immutable")
}

// TestUpdateProfile_ShortNameLeavesStoreUntouched pins the stored bytes to
// prove a failed validation has no side effects.
func TestUpdateProfile_ShortNameLeavesStoreUntouched(t *testing.T) {
	svc, st, kv := newTestService(t)
	ctx := context.Background()
	seedUsers(t, st, models.UserRecord{Name: "Jane Doe", Email: "jane@x.com", Password: "abcd"})
	_, err := svc.Login(ctx, "jane@x.com", "abcd")
	require.NoError(t, err)

	before, _, err := kv.Get(ctx, store.KeyUsers)
	require.NoError(t, err)

	require.ErrorIs(t, svc.UpdateProfile(ctx, "J", "efgh"), validators.ErrNameTooShort)

	after, _, err := kv.Get(ctx, store.KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateProfile_Anonymous(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.UpdateProfile(context.Background(), "Jane Doe", "abcd")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_DanglingSession(t *testing.T) {
	kv := store.NewMemoryKV()
	st := store.NewAdapter(kv, logger.Nop())
	ctx := context.Background()

	// a session persisted by a previous run whose user has since vanished
	st.WriteSession(ctx, &models.Session{Email: "ghost@x.com"})
	svc := NewAccountService(ctx, st, config.ClientApp{}, logger.Nop())

	err := svc.UpdateProfile(ctx, "Ghost", "abcd")
	require.ErrorIs(t, err, ErrUserNotFound)

	// the dangling session survives the failure
	require.NotNil(t, svc.Session())
}

// ── Logout / session state ───────────────────────────────────────────────────

func TestLogout_ClearsSessionEverywhere(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	seedUsers(t, st, models.UserRecord{Name: "Jane Doe", Email: "jane@x.com", Password: "abcd"})
	_, err := svc.Login(ctx, "jane@x.com", "abcd")
	require.NoError(t, err)

	svc.Logout(ctx)

	assert.Nil(t, svc.Session())
	assert.Nil(t, st.ReadSession(ctx))
}

func TestNewAccountService_RestoresPersistedSession(t *testing.T) {
	kv := store.NewMemoryKV()
	st := store.NewAdapter(kv, logger.Nop())
	ctx := context.Background()
	st.WriteSession(ctx, &models.Session{Email: "jane@x.com"})

	svc := NewAccountService(ctx, st, config.ClientApp{}, logger.Nop())

	session := svc.Session()
	require.NotNil(t, session)
	assert.Equal(t, "jane@x.com", session.Email)
}

func TestCurrentUser(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	seedUsers(t, st, models.UserRecord{Name: "Jane Doe", Email: "jane@x.com", Password: "abcd"})

	_, ok := svc.CurrentUser(ctx)
	assert.False(t, ok, "anonymous state has no current user")

	_, err := svc.Login(ctx, "jane@x.com", "abcd")
	require.NoError(t, err)

	user, ok := svc.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", user.Name)

	// delete the account behind the session's back
	st.WriteUsers(ctx, []models.UserRecord{})

	_, ok = svc.CurrentUser(ctx)
	assert.False(t, ok, "dangling session yields no current user")
	assert.NotNil(t, svc.Session(), "dangling session is not auto-cleared")
}

// ── Interaction tests against the mocked store ───────────────────────────────

func TestLogin_PersistsSessionThroughStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	ctx := context.Background()

	mockStore.EXPECT().ReadSession(gomock.Any()).Return(nil)
	mockStore.EXPECT().ReadUsers(gomock.Any()).
		Return([]models.UserRecord{{Name: "Jane Doe", Email: "jane@x.com", Password: "abcd"}})
	mockStore.EXPECT().WriteSession(gomock.Any(), &models.Session{Email: "jane@x.com"})

	svc := NewAccountService(ctx, mockStore, config.ClientApp{}, logger.Nop())

	_, err := svc.Login(ctx, "jane@x.com", "abcd")
	require.NoError(t, err)
}

func TestLogout_DeletesSessionThroughStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	ctx := context.Background()

	mockStore.EXPECT().ReadSession(gomock.Any()).Return(&models.Session{Email: "jane@x.com"})
	mockStore.EXPECT().WriteSession(gomock.Any(), (*models.Session)(nil))

	svc := NewAccountService(ctx, mockStore, config.ClientApp{}, logger.Nop())
	svc.Logout(ctx)
}

func TestFailedLogin_DoesNotTouchStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockStore(ctrl)
	ctx := context.Background()

	mockStore.EXPECT().ReadSession(gomock.Any()).Return(nil)
	mockStore.EXPECT().ReadUsers(gomock.Any()).Return([]models.UserRecord{})

	svc := NewAccountService(ctx, mockStore, config.ClientApp{}, logger.Nop())

	_, err := svc.Login(ctx, "jane@x.com", "abcd")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
