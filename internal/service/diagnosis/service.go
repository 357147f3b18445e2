package diagnosis

import (
	"context"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type Service struct {
	repo          repository.SecondaryDiagnosisRepository
	admissionRepo repository.AdmissionRepository
}

func NewService(repo repository.SecondaryDiagnosisRepository, admissionRepo repository.AdmissionRepository) *Service {
	return &Service{repo: repo, admissionRepo: admissionRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateSecondaryDiagnosisRequest) (*model.SecondaryDiagnosis, error) {
	if _, err := s.admissionRepo.Get(ctx, req.AdmissionID); err != nil {
		return nil, err
	}

	diagnosis := &model.SecondaryDiagnosis{
		ID:          uuid.New(),
		AdmissionID: req.AdmissionID,
		Diagnosis:   req.Diagnosis,
		Estado:      model.LifecycleActive,
	}

	if err := s.repo.Create(ctx, diagnosis); err != nil {
		return nil, err
	}
	return diagnosis, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.SecondaryDiagnosis, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.SecondaryDiagnosisFilter) ([]*model.SecondaryDiagnosis, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) ListByAdmission(ctx context.Context, admissionID uuid.UUID) ([]*model.SecondaryDiagnosis, error) {
	return s.repo.ListByAdmission(ctx, admissionID)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateSecondaryDiagnosisRequest) (*model.SecondaryDiagnosis, error) {
	diagnosis, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Diagnosis != nil {
		diagnosis.Diagnosis = *req.Diagnosis
	}

	if err := s.repo.Update(ctx, diagnosis); err != nil {
		return nil, err
	}
	return diagnosis, nil
}

func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*model.SecondaryDiagnosis, error) {
	diagnosis, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if diagnosis.Estado == model.LifecycleInactive {
		return nil, errors.BadRequest("secondary diagnosis is already inactive", nil)
	}

	diagnosis.Estado = model.LifecycleInactive
	if err := s.repo.Update(ctx, diagnosis); err != nil {
		return nil, err
	}
	return diagnosis, nil
}

func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) (*model.SecondaryDiagnosis, error) {
	diagnosis, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if diagnosis.Estado == model.LifecycleActive {
		return nil, errors.BadRequest("secondary diagnosis is already active", nil)
	}

	diagnosis.Estado = model.LifecycleActive
	if err := s.repo.Update(ctx, diagnosis); err != nil {
		return nil, err
	}
	return diagnosis, nil
}
