package model

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/inaaqc/clinical-api/pkg/errors"
)

// Observation (observacion) is a single clinical measurement or finding. It
// may carry a numeric value, a text value or both, and optionally points back
// at the patient, the admission, its type and the file/OCR row it came from.
type Observation struct {
	ID           uuid.UUID  `db:"id_observacion" json:"id_observacion"`
	PatientID    *uuid.UUID `db:"id_paciente" json:"id_paciente"`
	AdmissionID  *uuid.UUID `db:"id_admision" json:"id_admision"`
	TypeID       *uuid.UUID `db:"id_tipo_obs" json:"id_tipo_obs"`
	FileID       *uuid.UUID `db:"id_archivo" json:"id_archivo"`
	OCRID        *uuid.UUID `db:"id_ocr" json:"id_ocr"`
	ObservedAt   time.Time  `db:"fecha_hora" json:"fecha_hora"`
	NumericValue *float64   `db:"valor_numerico" json:"valor_numerico"`
	TextValue    *string    `db:"valor_texto" json:"valor_texto"`
	Unit         *string    `db:"unidad" json:"unidad"`
	CreatedAt    time.Time  `db:"creado_en" json:"creado_en"`
}

type CreateObservationRequest struct {
	PatientID    *uuid.UUID `json:"id_paciente"`
	AdmissionID  *uuid.UUID `json:"id_admision"`
	TypeID       *uuid.UUID `json:"id_tipo_obs"`
	FileID       *uuid.UUID `json:"id_archivo"`
	OCRID        *uuid.UUID `json:"id_ocr"`
	ObservedAt   time.Time  `json:"fecha_hora" binding:"required"`
	NumericValue *float64   `json:"valor_numerico"`
	TextValue    *string    `json:"valor_texto"`
	Unit         *string    `json:"unidad"`
}

type UpdateObservationRequest struct {
	PatientID    *uuid.UUID `json:"id_paciente"`
	AdmissionID  *uuid.UUID `json:"id_admision"`
	TypeID       *uuid.UUID `json:"id_tipo_obs"`
	FileID       *uuid.UUID `json:"id_archivo"`
	OCRID        *uuid.UUID `json:"id_ocr"`
	ObservedAt   *time.Time `json:"fecha_hora"`
	NumericValue *float64   `json:"valor_numerico"`
	TextValue    *string    `json:"valor_texto"`
	Unit         *string    `json:"unidad"`
}

type ObservationFilter struct {
	PatientID    string     `form:"id_paciente" binding:"omitempty,uuid"`
	AdmissionID  string     `form:"id_admision" binding:"omitempty,uuid"`
	TypeID       string     `form:"id_tipo_obs" binding:"omitempty,uuid"`
	FileID       string     `form:"id_archivo" binding:"omitempty,uuid"`
	OCRID        string     `form:"id_ocr" binding:"omitempty,uuid"`
	CreatedFrom  *time.Time `form:"creado_inicio"`
	CreatedTo    *time.Time `form:"creado_fin"`
	ObservedFrom *time.Time `form:"fecha_hora_inicio"`
	ObservedTo   *time.Time `form:"fecha_hora_fin"`
	NumericFrom  *float64   `form:"valor_numerico_inicio"`
	NumericTo    *float64   `form:"valor_numerico_fin"`
	TextValue    string     `form:"valor_texto"`
	Unit         string     `form:"unidad"`
}

func (f *ObservationFilter) Validate() error {
	if !bothOrNeither(f.CreatedFrom, f.CreatedTo) {
		return apperrors.BadRequest("both bounds of the creado_en range must be supplied", nil)
	}
	if !bothOrNeither(f.ObservedFrom, f.ObservedTo) {
		return apperrors.BadRequest("both bounds of the fecha_hora range must be supplied", nil)
	}
	if !bothOrNeither(f.NumericFrom, f.NumericTo) {
		return apperrors.BadRequest("both bounds of the valor_numerico range must be supplied", nil)
	}
	return nil
}
