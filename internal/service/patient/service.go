package patient

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

// Patients must be at least this old to be registered.
const minAgeDays = 30

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func validateBirthDate(birthDate *model.Date) error {
	if birthDate == nil {
		return nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if birthDate.Time.After(today) {
		return errors.BadRequest("birth date cannot be in the future", nil)
	}
	if birthDate.Time.After(today.AddDate(0, 0, -minAgeDays)) {
		return errors.BadRequest("patient must be at least one month old to be registered", nil)
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := validateBirthDate(req.BirthDate); err != nil {
		return nil, err
	}

	patient := &model.Patient{
		ID:         uuid.New(),
		ExternalID: req.ExternalID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  req.BirthDate,
		Sex:        req.Sex,
		Estado:     model.LifecycleActive,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) ListByEstado(ctx context.Context, estado model.Lifecycle) ([]*model.Patient, error) {
	return s.repo.ListByEstado(ctx, estado)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BirthDate != nil {
		if err := validateBirthDate(req.BirthDate); err != nil {
			return nil, err
		}
		patient.BirthDate = req.BirthDate
	}
	if req.ExternalID != nil {
		patient.ExternalID = req.ExternalID
	}
	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
	}
	if req.Sex != nil {
		patient.Sex = req.Sex
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Deactivate performs the logical deletion; deactivating an already-inactive
// patient is a client error, not a no-op.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient.Estado == model.LifecycleInactive {
		return nil, errors.BadRequest("patient is already inactive", nil)
	}

	patient.Estado = model.LifecycleInactive
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patient.Estado == model.LifecycleActive {
		return nil, errors.BadRequest("patient is already active", nil)
	}

	patient.Estado = model.LifecycleActive
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}
