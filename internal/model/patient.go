package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a registered patient (paciente).
type Patient struct {
	ID         uuid.UUID `db:"id_paciente" json:"id_paciente"`
	ExternalID *string   `db:"id_externo" json:"id_externo"`
	FirstName  string    `db:"nombre" json:"nombre"`
	LastName   string    `db:"apellido" json:"apellido"`
	BirthDate  *Date     `db:"fecha_nacimiento" json:"fecha_nacimiento"`
	Sex        *string   `db:"sexo" json:"sexo"`
	CreatedAt  time.Time `db:"creado_en" json:"creado_en"`
	Estado     Lifecycle `db:"estado" json:"estado"`
}

type CreatePatientRequest struct {
	ExternalID *string `json:"id_externo"`
	FirstName  string  `json:"nombre" binding:"required"`
	LastName   string  `json:"apellido" binding:"required"`
	BirthDate  *Date   `json:"fecha_nacimiento"`
	Sex        *string `json:"sexo"`
}

type UpdatePatientRequest struct {
	ExternalID *string `json:"id_externo"`
	FirstName  *string `json:"nombre"`
	LastName   *string `json:"apellido"`
	BirthDate  *Date   `json:"fecha_nacimiento"`
	Sex        *string `json:"sexo"`
}

type PatientFilter struct {
	FirstName  string     `form:"nombre"`
	LastName   string     `form:"apellido"`
	ExternalID string     `form:"id_externo"`
	Estado     string     `form:"estado" binding:"omitempty,estado"`
	BirthFrom  *time.Time `form:"fecha_min" time_format:"2006-01-02"`
	BirthTo    *time.Time `form:"fecha_max" time_format:"2006-01-02"`
	Limit      int        `form:"limite,default=50" binding:"omitempty,min=1,max=1000"`
	Offset     int        `form:"offset" binding:"omitempty,min=0"`
}
