package observationtype

import (
	"context"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type Service struct {
	repo repository.ObservationTypeRepository
}

func NewService(repo repository.ObservationTypeRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateObservationTypeRequest) (*model.ObservationType, error) {
	obsType := &model.ObservationType{
		ID:          uuid.New(),
		Code:        req.Code,
		Name:        req.Name,
		Category:    req.Category,
		DefaultUnit: req.DefaultUnit,
		Estado:      model.LifecycleActive,
	}

	if err := s.repo.Create(ctx, obsType); err != nil {
		return nil, err
	}
	return obsType, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.ObservationType, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.ObservationTypeFilter) ([]*model.ObservationType, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateObservationTypeRequest) (*model.ObservationType, error) {
	obsType, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		obsType.Code = req.Code
	}
	if req.Name != nil {
		obsType.Name = *req.Name
	}
	if req.Category != nil {
		obsType.Category = *req.Category
	}
	if req.DefaultUnit != nil {
		obsType.DefaultUnit = req.DefaultUnit
	}

	if err := s.repo.Update(ctx, obsType); err != nil {
		return nil, err
	}
	return obsType, nil
}

func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*model.ObservationType, error) {
	obsType, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if obsType.Estado == model.LifecycleInactive {
		return nil, errors.BadRequest("observation type is already inactive", nil)
	}

	obsType.Estado = model.LifecycleInactive
	if err := s.repo.Update(ctx, obsType); err != nil {
		return nil, err
	}
	return obsType, nil
}

func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) (*model.ObservationType, error) {
	obsType, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if obsType.Estado == model.LifecycleActive {
		return nil, errors.BadRequest("observation type is already active", nil)
	}

	obsType.Estado = model.LifecycleActive
	if err := s.repo.Update(ctx, obsType); err != nil {
		return nil, err
	}
	return obsType, nil
}
