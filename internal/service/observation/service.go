package observation

import (
	"context"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
)

type Service struct {
	repo repository.ObservationRepository
}

func NewService(repo repository.ObservationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateObservationRequest) (*model.Observation, error) {
	observation := &model.Observation{
		ID:           uuid.New(),
		PatientID:    req.PatientID,
		AdmissionID:  req.AdmissionID,
		TypeID:       req.TypeID,
		FileID:       req.FileID,
		OCRID:        req.OCRID,
		ObservedAt:   req.ObservedAt,
		NumericValue: req.NumericValue,
		TextValue:    req.TextValue,
		Unit:         req.Unit,
	}

	if err := s.repo.Create(ctx, observation); err != nil {
		return nil, err
	}
	return observation, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Observation, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.ObservationFilter) ([]*model.Observation, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateObservationRequest) (*model.Observation, error) {
	observation, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PatientID != nil {
		observation.PatientID = req.PatientID
	}
	if req.AdmissionID != nil {
		observation.AdmissionID = req.AdmissionID
	}
	if req.TypeID != nil {
		observation.TypeID = req.TypeID
	}
	if req.FileID != nil {
		observation.FileID = req.FileID
	}
	if req.OCRID != nil {
		observation.OCRID = req.OCRID
	}
	if req.ObservedAt != nil {
		observation.ObservedAt = *req.ObservedAt
	}
	if req.NumericValue != nil {
		observation.NumericValue = req.NumericValue
	}
	if req.TextValue != nil {
		observation.TextValue = req.TextValue
	}
	if req.Unit != nil {
		observation.Unit = req.Unit
	}

	if err := s.repo.Update(ctx, observation); err != nil {
		return nil, err
	}
	return observation, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
