package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/pkg/auth"
	"github.com/medicore/hospital-api/pkg/security"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
	byID    map[uuid.UUID]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byEmail: make(map[string]*model.User),
		byID:    make(map[uuid.UUID]*model.User),
	}
	for _, u := range users {
		repo.byEmail[u.Email] = u
		repo.byID[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New()
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, model.ErrInvalidCredentials
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, model.ErrInvalidCredentials
	}
	return u, nil
}

func (r *fakeUserRepo) Update(context.Context, *model.User) error { return nil }

func (r *fakeUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

func (r *fakeUserRepo) List(context.Context, *model.UserFilters) ([]*model.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Count(context.Context) (int, error) { return len(r.byID), nil }

func activeUser(t *testing.T, hasher security.PasswordHasher, email, password string) *model.User {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleNurse,
		Status:       model.UserStatusActive,
	}
	u.ID = uuid.New()
	return u
}

func TestAuthenticate_Success(t *testing.T) {
	hasher := security.NewBcryptHasher(4)
	user := activeUser(t, hasher, "nurse@hospital.local", "secret")
	svc := NewService(newFakeUserRepo(user), auth.NewJWTService("test-secret", time.Hour), hasher)

	got, token, err := svc.Authenticate(context.Background(), user.Email, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token)
	assert.NotNil(t, got.LastLoginAt)
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	hasher := security.NewBcryptHasher(4)
	user := activeUser(t, hasher, "nurse@hospital.local", "secret")
	inactive := activeUser(t, hasher, "gone@hospital.local", "secret")
	inactive.Status = model.UserStatusInactive
	svc := NewService(newFakeUserRepo(user, inactive), auth.NewJWTService("test-secret", time.Hour), hasher)

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@hospital.local", "secret"},
		{"wrong password", "nurse@hospital.local", "wrong"},
		{"inactive account", "gone@hospital.local", "secret"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Authenticate(context.Background(), tc.email, tc.password)
			assert.ErrorIs(t, err, model.ErrInvalidCredentials)
		})
	}
}

func TestValidateToken_RoundTrip(t *testing.T) {
	hasher := security.NewBcryptHasher(4)
	user := activeUser(t, hasher, "nurse@hospital.local", "secret")
	svc := NewService(newFakeUserRepo(user), auth.NewJWTService("test-secret", time.Hour), hasher)

	_, token, err := svc.Authenticate(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	got, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	hasher := security.NewBcryptHasher(4)
	svc := NewService(newFakeUserRepo(), auth.NewJWTService("test-secret", time.Hour), hasher)

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	hasher := security.NewBcryptHasher(4)
	user := activeUser(t, hasher, "nurse@hospital.local", "secret")

	other := NewService(newFakeUserRepo(user), auth.NewJWTService("other-secret", time.Hour), hasher)
	_, token, err := NewService(newFakeUserRepo(user), auth.NewJWTService("test-secret", time.Hour), hasher).
		Authenticate(context.Background(), user.Email, "secret")
	require.NoError(t, err)

	_, err = other.ValidateToken(context.Background(), token)
	assert.Error(t, err)
}
