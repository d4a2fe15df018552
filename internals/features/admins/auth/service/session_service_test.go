package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolsite_backend/internals/features/admins/auth/model"
	"schoolsite_backend/internals/features/admins/auth/service"
	"schoolsite_backend/internals/features/admins/auth/store"
	"schoolsite_backend/internals/helpers/apperror"
	authHelper "schoolsite_backend/internals/helpers/auth"
	"schoolsite_backend/internals/helpers/repository"
)

type fakeAdmins struct {
	admins map[string]*model.AdminModel
	err    error
}

func (f *fakeAdmins) FindByUsername(_ context.Context, username string) (*model.AdminModel, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.admins[username]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return a, nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time           { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newAuthority(t *testing.T) (*service.SessionAuthority, *store.MemoryStore, *clock) {
	t.Helper()
	hash, err := authHelper.HashPassword("s3cret")
	require.NoError(t, err)

	admins := &fakeAdmins{admins: map[string]*model.AdminModel{
		"alice": {AdminUsername: "alice", AdminPasswordHash: hash},
	}}
	st := store.NewMemoryStore()
	clk := &clock{t: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)}
	a := service.NewSessionAuthority(admins, st, "shared", 5*time.Minute, zap.NewNop()).WithClock(clk.now)
	return a, st, clk
}

func TestLogin_Success(t *testing.T) {
	a, st, _ := newAuthority(t)

	token, err := a.Login(context.Background(), "alice", "s3cret", "shared")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, st.Len())

	id, err := a.Authorize(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", id.Username)
}

func TestLogin_WrongSharedSecret(t *testing.T) {
	a, st, _ := newAuthority(t)

	_, err := a.Login(context.Background(), "alice", "s3cret", "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidSharedSecret))
	assert.Equal(t, "Invalid shared password", apperror.MessageOf(err))
	assert.Zero(t, st.Len())
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	a, _, _ := newAuthority(t)

	_, errUnknown := a.Login(context.Background(), "bob", "s3cret", "shared")
	_, errWrong := a.Login(context.Background(), "alice", "wrong", "shared")

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.True(t, errors.Is(errUnknown, apperror.ErrInvalidCredentials))
	assert.True(t, errors.Is(errWrong, apperror.ErrInvalidCredentials))
	assert.Equal(t, apperror.MessageOf(errUnknown), apperror.MessageOf(errWrong))
}

func TestLogin_LookupFailureIsPersistence(t *testing.T) {
	st := store.NewMemoryStore()
	a := service.NewSessionAuthority(&fakeAdmins{err: errors.New("db down")}, st, "shared", time.Minute, zap.NewNop())

	_, err := a.Login(context.Background(), "alice", "x", "shared")
	assert.True(t, errors.Is(err, apperror.ErrPersistence))
}

func TestAuthorize_SlidingIdleTimeout(t *testing.T) {
	a, _, clk := newAuthority(t)
	ctx := context.Background()

	token, err := a.Login(ctx, "alice", "s3cret", "shared")
	require.NoError(t, err)

	// 4 menit, 4 menit, 4 menit: total 12 menit tapi tidak pernah idle > 5 menit
	for i := 0; i < 3; i++ {
		clk.advance(4 * time.Minute)
		_, err := a.Authorize(ctx, token)
		require.NoError(t, err, "request %d", i)
	}
}

func TestAuthorize_ExpiredSessionIsDestroyed(t *testing.T) {
	a, st, clk := newAuthority(t)
	ctx := context.Background()

	token, err := a.Login(ctx, "alice", "s3cret", "shared")
	require.NoError(t, err)

	clk.advance(5*time.Minute + time.Second)
	_, err = a.Authorize(ctx, token)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
	assert.Zero(t, st.Len())

	// tidak hidup lagi walaupun jam mundur
	clk.advance(-time.Hour)
	_, err = a.Authorize(ctx, token)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
}

func TestAuthorize_ExactlyAtTimeoutStillValid(t *testing.T) {
	a, _, clk := newAuthority(t)
	token, err := a.Login(context.Background(), "alice", "s3cret", "shared")
	require.NoError(t, err)

	clk.advance(5 * time.Minute)
	_, err = a.Authorize(context.Background(), token)
	assert.NoError(t, err)
}

func TestAuthorize_MissingOrUnknownToken(t *testing.T) {
	a, _, _ := newAuthority(t)

	_, err := a.Authorize(context.Background(), "")
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))

	_, err = a.Authorize(context.Background(), "not-a-token")
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
}

func TestLogout_Idempotent(t *testing.T) {
	a, st, _ := newAuthority(t)
	ctx := context.Background()

	token, err := a.Login(ctx, "alice", "s3cret", "shared")
	require.NoError(t, err)

	require.NoError(t, a.Logout(ctx, token))
	require.NoError(t, a.Logout(ctx, token))
	require.NoError(t, a.Logout(ctx, ""))
	assert.Zero(t, st.Len())

	_, err = a.Authorize(ctx, token)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
}

func TestLogin_SessionsAreIndependent(t *testing.T) {
	a, _, _ := newAuthority(t)
	ctx := context.Background()

	t1, err := a.Login(ctx, "alice", "s3cret", "shared")
	require.NoError(t, err)
	t2, err := a.Login(ctx, "alice", "s3cret", "shared")
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)

	require.NoError(t, a.Logout(ctx, t1))
	_, err = a.Authorize(ctx, t2)
	assert.NoError(t, err)
}

// interleavingStore menjalankan afterGet sekali, tepat setelah Get mengembalikan sesi.
type interleavingStore struct {
	*store.MemoryStore
	afterGet func()
}

func (s *interleavingStore) Get(ctx context.Context, tokenHash string) (*model.AdminSessionModel, error) {
	sess, err := s.MemoryStore.Get(ctx, tokenHash)
	if hook := s.afterGet; hook != nil && err == nil {
		s.afterGet = nil
		hook()
	}
	return sess, err
}

func TestAuthorize_LogoutDuringAuthorizeIsNotUndone(t *testing.T) {
	hash, err := authHelper.HashPassword("s3cret")
	require.NoError(t, err)
	admins := &fakeAdmins{admins: map[string]*model.AdminModel{
		"alice": {AdminUsername: "alice", AdminPasswordHash: hash},
	}}
	st := &interleavingStore{MemoryStore: store.NewMemoryStore()}
	a := service.NewSessionAuthority(admins, st, "shared", 5*time.Minute, zap.NewNop())
	ctx := context.Background()

	token, err := a.Login(ctx, "alice", "s3cret", "shared")
	require.NoError(t, err)

	st.afterGet = func() { require.NoError(t, a.Logout(ctx, token)) }
	_, err = a.Authorize(ctx, token)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
	assert.Zero(t, st.Len())

	_, err = a.Authorize(ctx, token)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
}

func TestAuthorize_SweepDuringAuthorizeIsNotUndone(t *testing.T) {
	hash, err := authHelper.HashPassword("s3cret")
	require.NoError(t, err)
	admins := &fakeAdmins{admins: map[string]*model.AdminModel{
		"alice": {AdminUsername: "alice", AdminPasswordHash: hash},
	}}
	st := &interleavingStore{MemoryStore: store.NewMemoryStore()}
	a := service.NewSessionAuthority(admins, st, "shared", 5*time.Minute, zap.NewNop())
	ctx := context.Background()

	token, err := a.Login(ctx, "alice", "s3cret", "shared")
	require.NoError(t, err)

	st.afterGet = func() {
		_, err := st.DeleteIdleBefore(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
	}
	_, err = a.Authorize(ctx, token)
	assert.True(t, errors.Is(err, apperror.ErrUnauthenticated))
	assert.Zero(t, st.Len())
}

func TestMemoryStore_TouchDoesNotRecreate(t *testing.T) {
	st := store.NewMemoryStore()
	err := st.Touch(context.Background(), &model.AdminSessionModel{AdminSessionTokenHash: "gone", AdminSessionLastActivityAt: time.Now()})
	assert.True(t, errors.Is(err, service.ErrSessionNotFound))
	assert.Zero(t, st.Len())
}
