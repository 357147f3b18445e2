package model

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/inaaqc/clinical-api/pkg/errors"
)

// Admission represents a hospital admission (admision) of a patient.
type Admission struct {
	ID                 uuid.UUID  `db:"id_admision" json:"id_admision"`
	PatientID          uuid.UUID  `db:"id_paciente" json:"id_paciente"`
	AdmittedAt         time.Time  `db:"fecha_ingreso" json:"fecha_ingreso"`
	DischargedAt       *time.Time `db:"fecha_salida" json:"fecha_salida"`
	PrincipalDiagnosis *string    `db:"diagnostico_principal" json:"diagnostico_principal"`
	CreatedAt          time.Time  `db:"creado_en" json:"creado_en"`
	Estado             Lifecycle  `db:"estado" json:"estado"`
}

type CreateAdmissionRequest struct {
	PatientID          uuid.UUID  `json:"id_paciente" binding:"required"`
	AdmittedAt         time.Time  `json:"fecha_ingreso" binding:"required"`
	DischargedAt       *time.Time `json:"fecha_salida"`
	PrincipalDiagnosis *string    `json:"diagnostico_principal"`
}

// UpdateAdmissionRequest deliberately has no estado field: the lifecycle flag
// can only change through the dedicated transition endpoints.
type UpdateAdmissionRequest struct {
	AdmittedAt         *time.Time `json:"fecha_ingreso"`
	DischargedAt       *time.Time `json:"fecha_salida"`
	PrincipalDiagnosis *string    `json:"diagnostico_principal"`
}

// Validate enforces the both-bounds rule on every range filter.
func (f *AdmissionFilter) Validate() error {
	if !bothOrNeither(f.AdmittedFrom, f.AdmittedTo) {
		return apperrors.BadRequest("both bounds of the fecha_ingreso range must be supplied", nil)
	}
	if !bothOrNeither(f.DischargedFrom, f.DischargedTo) {
		return apperrors.BadRequest("both bounds of the fecha_salida range must be supplied", nil)
	}
	if !bothOrNeither(f.CreatedFrom, f.CreatedTo) {
		return apperrors.BadRequest("both bounds of the creado_en range must be supplied", nil)
	}
	return nil
}

type AdmissionFilter struct {
	PatientID          string     `form:"id_paciente" binding:"omitempty,uuid"`
	PrincipalDiagnosis string     `form:"diagnostico_principal"`
	Estado             string     `form:"estado" binding:"omitempty,estado"`
	AdmittedFrom       *time.Time `form:"fecha_ingreso_inicio"`
	AdmittedTo         *time.Time `form:"fecha_ingreso_fin"`
	DischargedFrom     *time.Time `form:"fecha_salida_inicio"`
	DischargedTo       *time.Time `form:"fecha_salida_fin"`
	CreatedFrom        *time.Time `form:"creado_inicio"`
	CreatedTo          *time.Time `form:"creado_fin"`
}
