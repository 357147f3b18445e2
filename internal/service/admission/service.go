package admission

import (
	"context"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type Service struct {
	repo repository.AdmissionRepository
}

func NewService(repo repository.AdmissionRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateAdmissionRequest) (*model.Admission, error) {
	if req.DischargedAt != nil && req.AdmittedAt.After(*req.DischargedAt) {
		return nil, errors.BadRequest("fecha_ingreso cannot be after fecha_salida", nil)
	}

	admission := &model.Admission{
		ID:                 uuid.New(),
		PatientID:          req.PatientID,
		AdmittedAt:         req.AdmittedAt,
		DischargedAt:       req.DischargedAt,
		PrincipalDiagnosis: req.PrincipalDiagnosis,
		Estado:             model.LifecycleActive,
	}

	if err := s.repo.Create(ctx, admission); err != nil {
		return nil, err
	}
	return admission, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Admission, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.AdmissionFilter) ([]*model.Admission, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// Update merges the supplied fields into the stored admission and validates
// the date range on the merged result, so a delta that only moves one bound
// cannot smuggle in an inverted stay.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAdmissionRequest) (*model.Admission, error) {
	admission, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	admittedAt := admission.AdmittedAt
	if req.AdmittedAt != nil {
		admittedAt = *req.AdmittedAt
	}
	dischargedAt := admission.DischargedAt
	if req.DischargedAt != nil {
		dischargedAt = req.DischargedAt
	}

	if dischargedAt != nil && admittedAt.After(*dischargedAt) {
		return nil, errors.BadRequest("fecha_ingreso cannot be after fecha_salida", nil)
	}

	admission.AdmittedAt = admittedAt
	admission.DischargedAt = dischargedAt
	if req.PrincipalDiagnosis != nil {
		admission.PrincipalDiagnosis = req.PrincipalDiagnosis
	}

	if err := s.repo.Update(ctx, admission); err != nil {
		return nil, err
	}
	return admission, nil
}

func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*model.Admission, error) {
	admission, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if admission.Estado == model.LifecycleInactive {
		return nil, errors.BadRequest("admission is already inactive", nil)
	}

	admission.Estado = model.LifecycleInactive
	if err := s.repo.Update(ctx, admission); err != nil {
		return nil, err
	}
	return admission, nil
}

func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) (*model.Admission, error) {
	admission, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if admission.Estado == model.LifecycleActive {
		return nil, errors.BadRequest("admission is already active", nil)
	}

	admission.Estado = model.LifecycleActive
	if err := s.repo.Update(ctx, admission); err != nil {
		return nil, err
	}
	return admission, nil
}
