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

type admissionRepository struct {
	db *sqlx.DB
}

func NewAdmissionRepository(db *sqlx.DB) repository.AdmissionRepository {
	return &admissionRepository{db: db}
}

func (r *admissionRepository) Create(ctx context.Context, admission *model.Admission) error {
	query := `
		INSERT INTO admisiones (id_admision, id_paciente, fecha_ingreso, fecha_salida, diagnostico_principal, creado_en, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	admission.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		admission.ID,
		admission.PatientID,
		admission.AdmittedAt,
		admission.DischargedAt,
		admission.PrincipalDiagnosis,
		admission.CreatedAt,
		admission.Estado,
	)
	if err != nil {
		return fmt.Errorf("failed to create admission: %w", err)
	}
	return nil
}

func (r *admissionRepository) Get(ctx context.Context, id uuid.UUID) (*model.Admission, error) {
	query := `SELECT * FROM admisiones WHERE id_admision = $1`
	var admission model.Admission
	err := r.db.GetContext(ctx, &admission, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("admission", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admission: %w", err)
	}
	return &admission, nil
}

func (r *admissionRepository) Update(ctx context.Context, admission *model.Admission) error {
	query := `
		UPDATE admisiones
		SET fecha_ingreso = $1, fecha_salida = $2, diagnostico_principal = $3, estado = $4
		WHERE id_admision = $5
	`
	_, err := r.db.ExecContext(ctx, query,
		admission.AdmittedAt,
		admission.DischargedAt,
		admission.PrincipalDiagnosis,
		admission.Estado,
		admission.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update admission: %w", err)
	}
	return nil
}

func (r *admissionRepository) List(ctx context.Context, filter *model.AdmissionFilter) ([]*model.Admission, error) {
	qb := &queryBuilder{}
	if filter.PatientID != "" {
		qb.Eq("id_paciente", filter.PatientID)
	}
	if filter.PrincipalDiagnosis != "" {
		qb.ILike("diagnostico_principal", filter.PrincipalDiagnosis)
	}
	if filter.Estado != "" {
		qb.Eq("estado", filter.Estado)
	}
	if filter.AdmittedFrom != nil && filter.AdmittedTo != nil {
		qb.Between("fecha_ingreso", *filter.AdmittedFrom, *filter.AdmittedTo)
	}
	if filter.DischargedFrom != nil && filter.DischargedTo != nil {
		qb.Between("fecha_salida", *filter.DischargedFrom, *filter.DischargedTo)
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil {
		qb.Between("creado_en", *filter.CreatedFrom, *filter.CreatedTo)
	}

	query, args := qb.Build(`SELECT * FROM admisiones`)

	admissions := []*model.Admission{}
	if err := r.db.SelectContext(ctx, &admissions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list admissions: %w", err)
	}
	return admissions, nil
}
