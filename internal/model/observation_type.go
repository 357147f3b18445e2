package model

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/inaaqc/clinical-api/pkg/errors"
)

// Observation type categories.
const (
	CategoryLab       = "LAB"
	CategoryVital     = "VIT"
	CategoryPulmonary = "PUL"
)

// ObservationType (tipo de observacion) is the catalog entry an observation
// points at: lab result, vital sign or pulmonary measurement.
type ObservationType struct {
	ID          uuid.UUID `db:"id_tipo_obs" json:"id_tipo_obs"`
	Code        *string   `db:"codigo" json:"codigo"`
	Name        string    `db:"nombre" json:"nombre"`
	Category    string    `db:"categoria" json:"categoria"`
	DefaultUnit *string   `db:"unidad_default" json:"unidad_default"`
	CreatedAt   time.Time `db:"creado_en" json:"creado_en"`
	Estado      Lifecycle `db:"estado" json:"estado"`
}

type CreateObservationTypeRequest struct {
	Code        *string `json:"codigo"`
	Name        string  `json:"nombre" binding:"required"`
	Category    string  `json:"categoria" binding:"required,oneof=LAB VIT PUL"`
	DefaultUnit *string `json:"unidad_default"`
}

type UpdateObservationTypeRequest struct {
	Code        *string `json:"codigo"`
	Name        *string `json:"nombre"`
	Category    *string `json:"categoria" binding:"omitempty,oneof=LAB VIT PUL"`
	DefaultUnit *string `json:"unidad_default"`
}

type ObservationTypeFilter struct {
	Code        string     `form:"codigo"`
	Name        string     `form:"nombre"`
	Category    string     `form:"categoria" binding:"omitempty,oneof=LAB VIT PUL"`
	DefaultUnit string     `form:"unidad_default"`
	Estado      string     `form:"estado" binding:"omitempty,estado"`
	CreatedFrom *time.Time `form:"fecha_inicio"`
	CreatedTo   *time.Time `form:"fecha_fin"`
}

func (f *ObservationTypeFilter) Validate() error {
	if !bothOrNeither(f.CreatedFrom, f.CreatedTo) {
		return apperrors.BadRequest("both bounds of the creado_en range must be supplied", nil)
	}
	return nil
}
