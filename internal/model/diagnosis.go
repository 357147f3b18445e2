package model

import "github.com/google/uuid"

// SecondaryDiagnosis (diagnostico secundario) is attached to exactly one
// admission and cascades with it.
type SecondaryDiagnosis struct {
	ID          uuid.UUID `db:"id_diag_sec" json:"id_diag_sec"`
	AdmissionID uuid.UUID `db:"id_admision" json:"id_admision"`
	Diagnosis   string    `db:"diagnostico" json:"diagnostico"`
	Estado      Lifecycle `db:"estado" json:"estado"`
}

type CreateSecondaryDiagnosisRequest struct {
	AdmissionID uuid.UUID `json:"id_admision" binding:"required"`
	Diagnosis   string    `json:"diagnostico" binding:"required"`
}

type UpdateSecondaryDiagnosisRequest struct {
	Diagnosis *string `json:"diagnostico"`
}

type SecondaryDiagnosisFilter struct {
	AdmissionID string `form:"id_admision" binding:"omitempty,uuid"`
	Diagnosis   string `form:"diagnostico"`
	Estado      string `form:"estado" binding:"omitempty,estado"`
}
