package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/pkg/errors"
	"github.com/inaaqc/clinical-api/pkg/security"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
	roles map[uuid.UUID]int
	names map[int]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[uuid.UUID]*model.User),
		roles: make(map[uuid.UUID]int),
		names: make(map[int]string),
	}
}

func (r *fakeUserRepo) CreateWithRole(_ context.Context, u *model.User, roleID int) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return errors.BadRequest("username already taken", nil)
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	r.roles[u.ID] = roleID
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
		Role:     r.names[r.roles[id]],
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
	if _, ok := r.users[u.ID]; !ok {
		return errors.NotFound("user", nil)
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListWithRole(_ context.Context, _ *model.UserFilter) ([]*model.UserWithRole, error) {
	out := make([]*model.UserWithRole, 0, len(r.users))
	for id := range r.users {
		u, _ := r.GetWithRole(context.Background(), id)
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) RoleName(_ context.Context, userID uuid.UUID) (string, error) {
	roleID, ok := r.roles[userID]
	if !ok {
		return "", errors.NotFound("role", nil)
	}
	return r.names[roleID], nil
}

type fakeRoleRepo struct {
	roles map[int]*model.Role
}

func (r *fakeRoleRepo) Create(_ context.Context, role *model.Role) error {
	r.roles[role.ID] = role
	return nil
}

func (r *fakeRoleRepo) Get(_ context.Context, id int) (*model.Role, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, errors.NotFound("role", nil)
	}
	return role, nil
}

func (r *fakeRoleRepo) Update(_ context.Context, role *model.Role) error { return nil }
func (r *fakeRoleRepo) Delete(_ context.Context, id int) error           { return nil }
func (r *fakeRoleRepo) List(_ context.Context, _ *model.RoleFilter) ([]*model.Role, error) {
	return nil, nil
}

type fakeUserRoleRepo struct {
	userRepo *fakeUserRepo
}

func (r *fakeUserRoleRepo) Assign(_ context.Context, a *model.UserRole) error {
	r.userRepo.roles[a.UserID] = a.RoleID
	return nil
}

func (r *fakeUserRoleRepo) Reassign(_ context.Context, userID uuid.UUID, roleID int) error {
	r.userRepo.roles[userID] = roleID
	return nil
}

func (r *fakeUserRoleRepo) List(_ context.Context) ([]*model.UserRole, error) { return nil, nil }
func (r *fakeUserRoleRepo) Remove(_ context.Context, userID uuid.UUID, _ int) error {
	delete(r.userRepo.roles, userID)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeUserRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	userRepo.names[1] = "doctor"
	userRepo.names[2] = "analista"

	roleRepo := &fakeRoleRepo{roles: map[int]*model.Role{
		1: {ID: 1, Name: "doctor"},
		2: {ID: 2, Name: "analista"},
	}}
	userRoleRepo := &fakeUserRoleRepo{userRepo: userRepo}

	return NewService(userRepo, roleRepo, userRoleRepo, security.NewBcryptHasher(4)), userRepo
}

func createRequest() *model.CreateUserRequest {
	email := "doc@hospital.test"
	return &model.CreateUserRequest{
		Username: "doc1",
		FullName: "Doctor Uno",
		Email:    &email,
		Password: "secreto123",
		RoleID:   1,
	}
}

func TestCreateUserWithRole(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, "doctor", created.Role)
	assert.Equal(t, model.LifecycleActive, created.Estado)

	// The stored hash must verify against the original password.
	stored := repo.users[created.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, security.NewBcryptHasher(4).Compare(stored.PasswordHash, "secreto123"))
}

func TestCreateUserUnknownRole(t *testing.T) {
	svc, _ := newTestService(t)

	req := createRequest()
	req.RoleID = 99
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), createRequest())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	oldHash := repo.users[created.ID].PasswordHash

	newPassword := "otrosecreto"
	_, err = svc.Update(context.Background(), created.ID, &model.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)

	newHash := repo.users[created.ID].PasswordHash
	assert.NotEqual(t, oldHash, newHash)
	assert.NoError(t, security.NewBcryptHasher(4).Compare(newHash, newPassword))
}

func TestUpdateUserReassignsRole(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	newRole := 2
	updated, err := svc.Update(context.Background(), created.ID, &model.UpdateUserRequest{RoleID: &newRole})
	require.NoError(t, err)
	assert.Equal(t, "analista", updated.Role)

	badRole := 99
	_, err = svc.Update(context.Background(), created.ID, &model.UpdateUserRequest{RoleID: &badRole})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))
}

func TestUserLifecycleTransitions(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	deactivated, err := svc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleInactive, deactivated.Estado)

	_, err = svc.Deactivate(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	reactivated, err := svc.Reactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleActive, reactivated.Estado)
}
