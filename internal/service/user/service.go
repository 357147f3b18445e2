package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
	"github.com/inaaqc/clinical-api/pkg/security"
)

type Service struct {
	repo         repository.UserRepository
	roleRepo     repository.RoleRepository
	userRoleRepo repository.UserRoleRepository
	hasher       security.PasswordHasher
}

func NewService(repo repository.UserRepository, roleRepo repository.RoleRepository, userRoleRepo repository.UserRoleRepository, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, roleRepo: roleRepo, userRoleRepo: userRoleRepo, hasher: hasher}
}

// Create registers a user together with its initial role assignment.
func (s *Service) Create(ctx context.Context, req *model.CreateUserRequest) (*model.UserWithRole, error) {
	role, err := s.roleRepo.Get(ctx, req.RoleID)
	if err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.BadRequest("the requested role does not exist", err)
		}
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, errors.Internal("failed to hash password", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Estado:       model.LifecycleActive,
	}

	if err := s.repo.CreateWithRole(ctx, user, role.ID); err != nil {
		return nil, err
	}

	return &model.UserWithRole{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
		Estado:   user.Estado,
		Role:     role.Name,
	}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.UserWithRole, error) {
	return s.repo.GetWithRole(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.UserFilter) ([]*model.UserWithRole, error) {
	return s.repo.ListWithRole(ctx, filter)
}

// Update applies a partial update. A new password is re-hashed and a new role
// replaces the existing assignment.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateUserRequest) (*model.UserWithRole, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, errors.Internal("failed to hash password", err)
		}
		user.PasswordHash = hash
	}
	if req.Estado != nil {
		if !req.Estado.Valid() {
			return nil, errors.BadRequest("estado must be 'activo' or 'inactivo'", nil)
		}
		user.Estado = *req.Estado
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if req.RoleID != nil {
		if _, err := s.roleRepo.Get(ctx, *req.RoleID); err != nil {
			if errors.IsCode(err, errors.ErrNotFound) {
				return nil, errors.BadRequest("the requested role does not exist", err)
			}
			return nil, err
		}
		if err := s.userRoleRepo.Reassign(ctx, user.ID, *req.RoleID); err != nil {
			return nil, err
		}
	}

	return s.repo.GetWithRole(ctx, id)
}

// Deactivate is the logical delete for users.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*model.UserWithRole, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Estado == model.LifecycleInactive {
		return nil, errors.BadRequest("user is already inactive", nil)
	}
	user.Estado = model.LifecycleInactive
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.repo.GetWithRole(ctx, id)
}

func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) (*model.UserWithRole, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Estado == model.LifecycleActive {
		return nil, errors.BadRequest("user is already active", nil)
	}
	user.Estado = model.LifecycleActive
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.repo.GetWithRole(ctx, id)
}
