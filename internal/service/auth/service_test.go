package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inaaqc/clinical-api/internal/model"
	pkgauth "github.com/inaaqc/clinical-api/pkg/auth"
	"github.com/inaaqc/clinical-api/pkg/errors"
	"github.com/inaaqc/clinical-api/pkg/security"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
	roles map[uuid.UUID]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[uuid.UUID]*model.User),
		roles: make(map[uuid.UUID]string),
	}
}

func (r *fakeUserRepo) CreateWithRole(_ context.Context, u *model.User, _ int) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("user", nil)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetWithRole(_ context.Context, id uuid.UUID) (*model.UserWithRole, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("user", nil)
	}
	return &model.UserWithRole{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Estado:   u.Estado,
		Role:     r.roles[id],
	}, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email != nil && *u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("user", nil)
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("user", nil)
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListWithRole(_ context.Context, _ *model.UserFilter) ([]*model.UserWithRole, error) {
	return nil, nil
}

func (r *fakeUserRepo) RoleName(_ context.Context, userID uuid.UUID) (string, error) {
	role, ok := r.roles[userID]
	if !ok {
		return "", errors.NotFound("role", nil)
	}
	return role, nil
}

func seedUser(t *testing.T, repo *fakeUserRepo, hasher security.PasswordHasher, email, password, role string, estado model.Lifecycle) *model.User {
	t.Helper()
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	u := &model.User{
		ID:           uuid.New(),
		Username:     email,
		FullName:     "Test User",
		Email:        &email,
		PasswordHash: hash,
		Estado:       estado,
	}
	repo.users[u.ID] = u
	repo.roles[u.ID] = role
	return u
}

func newTestService(t *testing.T) (*Service, *fakeUserRepo, security.PasswordHasher) {
	t.Helper()
	repo := newFakeUserRepo()
	hasher := security.NewBcryptHasher(4)
	jwtSvc := pkgauth.NewJWTService("test-secret", time.Hour)
	return NewService(repo, jwtSvc, hasher), repo, hasher
}

func TestLoginSuccess(t *testing.T) {
	svc, repo, hasher := newTestService(t)
	seedUser(t, repo, hasher, "doc@hospital.test", "secreto123", "doctor", model.LifecycleActive)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "doc@hospital.test",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "Hola Doctor!!", resp.Greeting)
	require.NotNil(t, resp.User)
	assert.Equal(t, "doctor", resp.User.Role)
}

func TestLoginGreetingPerRole(t *testing.T) {
	tests := []struct {
		role     string
		greeting string
	}{
		{"ti", "Hola TI!!"},
		{"doctor", "Hola Doctor!!"},
		{"analista", "Hola Analista!!"},
		{"superadmin", "Hola Superadmin!!"},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			svc, repo, hasher := newTestService(t)
			seedUser(t, repo, hasher, tt.role+"@hospital.test", "secreto123", tt.role, model.LifecycleActive)

			resp, err := svc.Login(context.Background(), &model.LoginRequest{
				Email:    tt.role + "@hospital.test",
				Password: "secreto123",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.greeting, resp.Greeting)
		})
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nadie@hospital.test",
		Password: "cualquiera",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUnauthorized))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, repo, hasher := newTestService(t)
	seedUser(t, repo, hasher, "doc@hospital.test", "secreto123", "doctor", model.LifecycleActive)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "doc@hospital.test",
		Password: "equivocada",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUnauthorized))
}

func TestLoginInactiveUser(t *testing.T) {
	svc, repo, hasher := newTestService(t)
	seedUser(t, repo, hasher, "doc@hospital.test", "secreto123", "doctor", model.LifecycleInactive)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "doc@hospital.test",
		Password: "secreto123",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrForbidden))
}

func TestLoginUnmappedRole(t *testing.T) {
	svc, repo, hasher := newTestService(t)
	seedUser(t, repo, hasher, "doc@hospital.test", "secreto123", "enfermero", model.LifecycleActive)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "doc@hospital.test",
		Password: "secreto123",
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInternal))
}

func TestCurrentUserResolvesToken(t *testing.T) {
	svc, repo, hasher := newTestService(t)
	u := seedUser(t, repo, hasher, "doc@hospital.test", "secreto123", "doctor", model.LifecycleActive)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "doc@hospital.test",
		Password: "secreto123",
	})
	require.NoError(t, err)

	current, err := svc.CurrentUser(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, current.ID)
	assert.Equal(t, "doctor", current.Role)
}

func TestCurrentUserRejectsDeactivatedAccount(t *testing.T) {
	svc, repo, hasher := newTestService(t)
	u := seedUser(t, repo, hasher, "doc@hospital.test", "secreto123", "doctor", model.LifecycleActive)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "doc@hospital.test",
		Password: "secreto123",
	})
	require.NoError(t, err)

	// The token is still within its lifetime, but the stored account changed.
	repo.users[u.ID].Estado = model.LifecycleInactive

	_, err = svc.CurrentUser(context.Background(), resp.AccessToken)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrForbidden))
}

func TestCurrentUserInvalidToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CurrentUser(context.Background(), "no-es-un-token")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrUnauthorized))
}
