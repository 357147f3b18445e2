package review

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type Service struct {
	repo    repository.ReviewRepository
	obsRepo repository.ObservationRepository
	now     func() time.Time
}

func NewService(repo repository.ReviewRepository, obsRepo repository.ObservationRepository) *Service {
	return &Service{repo: repo, obsRepo: obsRepo, now: time.Now}
}

// Create opens a pending review for an observation. Uniqueness per
// observation is left to the storage layer; the repository surfaces a
// constraint violation as a client error.
func (s *Service) Create(ctx context.Context, req *model.CreateReviewRequest) (*model.ObservationReview, error) {
	if _, err := s.obsRepo.Get(ctx, req.ObservationID); err != nil {
		return nil, err
	}

	review := &model.ObservationReview{
		ID:            uuid.New(),
		ObservationID: req.ObservationID,
		ReviewerID:    req.ReviewerID,
		State:         model.ReviewPending,
		Comments:      req.Comments,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.ObservationReview, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.ReviewFilter) ([]*model.ObservationReview, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// Finalize moves a pending review into one of the two terminal states and
// stamps revisado_en. Terminal reviews are immutable.
func (s *Service) Finalize(ctx context.Context, id uuid.UUID, req *model.FinalizeReviewRequest) (*model.ObservationReview, error) {
	review, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.State != model.ReviewPending {
		return nil, errors.BadRequest("review has already been finalized and cannot be modified", nil)
	}
	if !req.State.Terminal() {
		return nil, errors.BadRequest("estado_revision must be 'revisado' or 'rechazado'", nil)
	}

	reviewedAt := s.now()
	review.State = req.State
	review.ReviewedAt = &reviewedAt

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Delete is physical and unconditional, terminal state included.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
