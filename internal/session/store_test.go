package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/token"
	"github.com/medicore/hospital-api/pkg/logger"
)

type fakeAuth struct {
	authFn     func(ctx context.Context, email, password string) (*model.User, string, error)
	validateFn func(ctx context.Context, tok string) (*model.User, error)
}

func (f *fakeAuth) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.authFn(ctx, email, password)
}

func (f *fakeAuth) ValidateToken(ctx context.Context, tok string) (*model.User, error) {
	return f.validateFn(ctx, tok)
}

func newUser(email string) *model.User {
	u := &model.User{Email: email, Role: model.RoleDoctor}
	u.ID = uuid.New()
	return u
}

func newTestStore(auth *fakeAuth) (*Store, token.Store) {
	tokens := token.NewMemoryStore()
	log := logger.NewLogger(&logger.Config{Output: io.Discard})
	return NewStore(auth, tokens, Config{TokenTTL: time.Hour}, log), tokens
}

func assertInvariant(t *testing.T, sess model.Session) {
	t.Helper()
	assert.Equal(t, sess.User != nil && sess.Token != "", sess.IsAuthenticated,
		"authenticated must mean user and token are both present")
}

func TestLogin_Success(t *testing.T) {
	user := newUser("doc@hospital.local")
	auth := &fakeAuth{
		authFn: func(_ context.Context, email, password string) (*model.User, string, error) {
			if email == user.Email && password == "secret" {
				return user, "tok-1", nil
			}
			return nil, "", model.ErrInvalidCredentials
		},
	}
	store, tokens := newTestStore(auth)

	resp, err := store.Login(context.Background(), model.LoginRequest{Email: user.Email, Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, user, resp.User)
	assert.Equal(t, "tok-1", resp.Token)

	sess := store.Snapshot()
	assert.True(t, sess.IsAuthenticated)
	assert.False(t, sess.IsLoading)
	assertInvariant(t, sess)

	persisted, err := tokens.Get(context.Background(), "session:token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", persisted)
}

func TestLogin_FailureClearsSession(t *testing.T) {
	auth := &fakeAuth{
		authFn: func(context.Context, string, string) (*model.User, string, error) {
			return nil, "", model.ErrInvalidCredentials
		},
	}
	store, _ := newTestStore(auth)

	_, err := store.Login(context.Background(), model.LoginRequest{Email: "x@y", Password: "wrong"})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	sess := store.Snapshot()
	assert.True(t, sess.Empty())
	assert.False(t, sess.IsLoading)
	assertInvariant(t, sess)
}

func TestLogin_LoadingWhileInFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	auth := &fakeAuth{
		authFn: func(context.Context, string, string) (*model.User, string, error) {
			close(started)
			<-release
			return newUser("slow@hospital.local"), "tok", nil
		},
	}
	store, _ := newTestStore(auth)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = store.Login(context.Background(), model.LoginRequest{Email: "slow@hospital.local", Password: "p"})
	}()

	<-started
	assert.True(t, store.Snapshot().IsLoading)
	assert.False(t, store.Snapshot().IsAuthenticated)

	close(release)
	<-done
	assert.False(t, store.Snapshot().IsLoading)
}

func TestLogin_StaleResolutionDiscarded(t *testing.T) {
	slowUser := newUser("slow@hospital.local")
	fastUser := newUser("fast@hospital.local")

	started := make(chan struct{})
	release := make(chan struct{})
	auth := &fakeAuth{
		authFn: func(_ context.Context, email, _ string) (*model.User, string, error) {
			if email == slowUser.Email {
				close(started)
				<-release
				return slowUser, "tok-slow", nil
			}
			return fastUser, "tok-fast", nil
		},
	}
	store, _ := newTestStore(auth)

	slowErr := make(chan error, 1)
	go func() {
		_, err := store.Login(context.Background(), model.LoginRequest{Email: slowUser.Email, Password: "p"})
		slowErr <- err
	}()

	<-started

	// Second attempt starts and resolves while the first is still in flight.
	resp, err := store.Login(context.Background(), model.LoginRequest{Email: fastUser.Email, Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, fastUser, resp.User)

	close(release)
	assert.ErrorIs(t, <-slowErr, ErrLoginSuperseded)

	// The stale resolution must not have overwritten the newer session.
	sess := store.Snapshot()
	assert.Equal(t, fastUser.Email, sess.User.Email)
	assert.Equal(t, "tok-fast", sess.Token)
	assertInvariant(t, sess)
}

func TestLogout_Idempotent(t *testing.T) {
	user := newUser("doc@hospital.local")
	auth := &fakeAuth{
		authFn: func(context.Context, string, string) (*model.User, string, error) {
			return user, "tok", nil
		},
	}
	store, tokens := newTestStore(auth)

	// Logging out with no session is a no-op, not an error.
	require.NoError(t, store.Logout(context.Background()))
	assert.True(t, store.Snapshot().Empty())

	_, err := store.Login(context.Background(), model.LoginRequest{Email: user.Email, Password: "p"})
	require.NoError(t, err)

	require.NoError(t, store.Logout(context.Background()))
	assert.True(t, store.Snapshot().Empty())

	_, err = tokens.Get(context.Background(), "session:token")
	assert.ErrorIs(t, err, token.ErrNotFound)

	// Repeating yields the same empty state.
	require.NoError(t, store.Logout(context.Background()))
	assert.True(t, store.Snapshot().Empty())
}

func TestRehydrate_ValidToken(t *testing.T) {
	user := newUser("doc@hospital.local")
	auth := &fakeAuth{
		validateFn: func(_ context.Context, tok string) (*model.User, error) {
			require.Equal(t, "persisted-tok", tok)
			return user, nil
		},
	}
	store, tokens := newTestStore(auth)
	require.NoError(t, tokens.Set(context.Background(), "session:token", "persisted-tok", time.Hour))

	require.NoError(t, store.Rehydrate(context.Background()))

	sess := store.Snapshot()
	assert.True(t, sess.IsAuthenticated)
	assert.Equal(t, user.Email, sess.User.Email)
	assert.Equal(t, "persisted-tok", sess.Token)
	assertInvariant(t, sess)
}

func TestRehydrate_RejectedTokenClearsPersistence(t *testing.T) {
	auth := &fakeAuth{
		validateFn: func(context.Context, string) (*model.User, error) {
			return nil, model.ErrInvalidCredentials
		},
	}
	store, tokens := newTestStore(auth)
	require.NoError(t, tokens.Set(context.Background(), "session:token", "stale-tok", time.Hour))

	require.NoError(t, store.Rehydrate(context.Background()))

	assert.True(t, store.Snapshot().Empty())
	_, err := tokens.Get(context.Background(), "session:token")
	assert.ErrorIs(t, err, token.ErrNotFound)
}

func TestRehydrate_NoPersistedToken(t *testing.T) {
	store, _ := newTestStore(&fakeAuth{})

	require.NoError(t, store.Rehydrate(context.Background()))
	assert.True(t, store.Snapshot().Empty())
}
