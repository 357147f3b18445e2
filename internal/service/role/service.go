package role

import (
	"context"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type Service struct {
	repo         repository.RoleRepository
	userRoleRepo repository.UserRoleRepository
	userRepo     repository.UserRepository
}

func NewService(repo repository.RoleRepository, userRoleRepo repository.UserRoleRepository, userRepo repository.UserRepository) *Service {
	return &Service{repo: repo, userRoleRepo: userRoleRepo, userRepo: userRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateRoleRequest) (*model.Role, error) {
	role := &model.Role{Name: req.Name}
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *Service) Get(ctx context.Context, id int) (*model.Role, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.RoleFilter) ([]*model.Role, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id int, req *model.UpdateRoleRequest) (*model.Role, error) {
	role, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		role.Name = *req.Name
	}
	if err := s.repo.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Assign links a user to a role. Both sides must exist.
func (s *Service) Assign(ctx context.Context, req *model.AssignRoleRequest) (*model.UserRole, error) {
	if _, err := s.userRepo.Get(ctx, req.UserID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, req.RoleID); err != nil {
		if errors.IsCode(err, errors.ErrNotFound) {
			return nil, errors.BadRequest("the requested role does not exist", err)
		}
		return nil, err
	}

	assignment := &model.UserRole{UserID: req.UserID, RoleID: req.RoleID}
	if err := s.userRoleRepo.Assign(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *Service) ListAssignments(ctx context.Context) ([]*model.UserRole, error) {
	return s.userRoleRepo.List(ctx)
}

func (s *Service) RemoveAssignment(ctx context.Context, userID uuid.UUID, roleID int) error {
	return s.userRoleRepo.Remove(ctx, userID, roleID)
}
