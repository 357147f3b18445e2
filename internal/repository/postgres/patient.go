package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO pacientes (id_paciente, id_externo, nombre, apellido, fecha_nacimiento, sexo, creado_en, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	patient.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.ExternalID,
		patient.FirstName,
		patient.LastName,
		patient.BirthDate,
		patient.Sex,
		patient.CreatedAt,
		patient.Estado,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	query := `SELECT * FROM pacientes WHERE id_paciente = $1`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("patient", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE pacientes
		SET id_externo = $1, nombre = $2, apellido = $3, fecha_nacimiento = $4, sexo = $5, estado = $6
		WHERE id_paciente = $7
	`
	_, err := r.db.ExecContext(ctx, query,
		patient.ExternalID,
		patient.FirstName,
		patient.LastName,
		patient.BirthDate,
		patient.Sex,
		patient.Estado,
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context, filter *model.PatientFilter) ([]*model.Patient, error) {
	qb := &queryBuilder{}
	if filter.FirstName != "" {
		qb.ILike("nombre", filter.FirstName)
	}
	if filter.LastName != "" {
		qb.ILike("apellido", filter.LastName)
	}
	if filter.ExternalID != "" {
		qb.Eq("id_externo", filter.ExternalID)
	}
	if filter.Estado != "" {
		qb.Eq("estado", filter.Estado)
	}
	if filter.BirthFrom != nil {
		qb.GTE("fecha_nacimiento", *filter.BirthFrom)
	}
	if filter.BirthTo != nil {
		qb.LTE("fecha_nacimiento", *filter.BirthTo)
	}

	query, _ := qb.Build(`SELECT * FROM pacientes`)
	query, args := qb.Paginate(query, filter.Limit, filter.Offset)

	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) ListByEstado(ctx context.Context, estado model.Lifecycle) ([]*model.Patient, error) {
	query := `SELECT * FROM pacientes WHERE estado = $1`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query, estado); err != nil {
		return nil, fmt.Errorf("failed to list patients by estado: %w", err)
	}
	return patients, nil
}
