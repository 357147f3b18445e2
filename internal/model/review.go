package model

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/inaaqc/clinical-api/pkg/errors"
)

// ReviewState is the observation-review workflow state. Reviews start pending
// and finalize into exactly one of the two terminal states.
type ReviewState string

const (
	ReviewPending  ReviewState = "pendiente"
	ReviewReviewed ReviewState = "revisado"
	ReviewRejected ReviewState = "rechazado"
)

// Terminal reports whether no further transitions are permitted.
func (s ReviewState) Terminal() bool {
	return s == ReviewReviewed || s == ReviewRejected
}

// ObservationReview (revision de observacion) is the review record for one
// observation. The one-review-per-observation invariant is enforced by a
// unique constraint on id_observacion.
type ObservationReview struct {
	ID            uuid.UUID   `db:"id_revision" json:"id_revision"`
	ObservationID uuid.UUID   `db:"id_observacion" json:"id_observacion"`
	ReviewerID    *uuid.UUID  `db:"id_usuario_revisor" json:"id_usuario_revisor"`
	State         ReviewState `db:"estado_revision" json:"estado_revision"`
	Comments      *string     `db:"comentarios" json:"comentarios"`
	ReviewedAt    *time.Time  `db:"revisado_en" json:"revisado_en"`
}

type CreateReviewRequest struct {
	ObservationID uuid.UUID  `json:"id_observacion" binding:"required"`
	ReviewerID    *uuid.UUID `json:"id_usuario_revisor"`
	Comments      *string    `json:"comentarios"`
}

// FinalizeReviewRequest carries the single permitted transition out of
// pendiente. The target state must be revisado or rechazado.
type FinalizeReviewRequest struct {
	State ReviewState `json:"estado_revision" binding:"required"`
}

type ReviewFilter struct {
	ObservationID string      `form:"id_observacion" binding:"omitempty,uuid"`
	ReviewerID    string      `form:"id_usuario_revisor" binding:"omitempty,uuid"`
	State         ReviewState `form:"estado_revision" binding:"omitempty,oneof=pendiente revisado rechazado"`
	Comments      string      `form:"comentarios"`
	ReviewedFrom  *time.Time  `form:"revisado_desde"`
	ReviewedTo    *time.Time  `form:"revisado_hasta"`
}

// Validate requires both range bounds together and a non-inverted range.
func (f *ReviewFilter) Validate() error {
	if !bothOrNeither(f.ReviewedFrom, f.ReviewedTo) {
		return apperrors.BadRequest("both revisado_desde and revisado_hasta must be supplied", nil)
	}
	if f.ReviewedFrom != nil && f.ReviewedTo.Before(*f.ReviewedFrom) {
		return apperrors.BadRequest("revisado_hasta cannot precede revisado_desde", nil)
	}
	return nil
}
