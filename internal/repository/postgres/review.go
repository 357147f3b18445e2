package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a pending review. The unique constraint on id_observacion is
// the single source of truth for the one-review-per-observation invariant;
// concurrent creations race on the index, not on an application-level check.
func (r *reviewRepository) Create(ctx context.Context, review *model.ObservationReview) error {
	query := `
		INSERT INTO revision_observaciones (id_revision, id_observacion, id_usuario_revisor, estado_revision, comentarios, revisado_en)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		review.ID,
		review.ObservationID,
		review.ReviewerID,
		review.State,
		review.Comments,
		review.ReviewedAt,
	)
	if isUniqueViolation(err) {
		return errors.BadRequest("a review already exists for this observation", err)
	}
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Get(ctx context.Context, id uuid.UUID) (*model.ObservationReview, error) {
	query := `SELECT * FROM revision_observaciones WHERE id_revision = $1`
	var review model.ObservationReview
	err := r.db.GetContext(ctx, &review, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("review", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *model.ObservationReview) error {
	query := `
		UPDATE revision_observaciones
		SET estado_revision = $1, comentarios = $2, revisado_en = $3
		WHERE id_revision = $4
	`
	_, err := r.db.ExecContext(ctx, query,
		review.State,
		review.Comments,
		review.ReviewedAt,
		review.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM revision_observaciones WHERE id_revision = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}

func (r *reviewRepository) List(ctx context.Context, filter *model.ReviewFilter) ([]*model.ObservationReview, error) {
	qb := &queryBuilder{}
	if filter.ObservationID != "" {
		qb.Eq("id_observacion", filter.ObservationID)
	}
	if filter.ReviewerID != "" {
		qb.Eq("id_usuario_revisor", filter.ReviewerID)
	}
	if filter.State != "" {
		qb.Eq("estado_revision", filter.State)
	}
	if filter.Comments != "" {
		qb.ILike("comentarios", filter.Comments)
	}
	if filter.ReviewedFrom != nil && filter.ReviewedTo != nil {
		qb.Between("revisado_en", *filter.ReviewedFrom, *filter.ReviewedTo)
	}

	query, args := qb.Build(`SELECT * FROM revision_observaciones`)

	reviews := []*model.ObservationReview{}
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
