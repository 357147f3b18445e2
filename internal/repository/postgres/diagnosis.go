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

type secondaryDiagnosisRepository struct {
	db *sqlx.DB
}

func NewSecondaryDiagnosisRepository(db *sqlx.DB) repository.SecondaryDiagnosisRepository {
	return &secondaryDiagnosisRepository{db: db}
}

func (r *secondaryDiagnosisRepository) Create(ctx context.Context, diagnosis *model.SecondaryDiagnosis) error {
	query := `
		INSERT INTO diagnosticos_secundarios (id_diag_sec, id_admision, diagnostico, estado)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		diagnosis.ID,
		diagnosis.AdmissionID,
		diagnosis.Diagnosis,
		diagnosis.Estado,
	)
	if err != nil {
		return fmt.Errorf("failed to create secondary diagnosis: %w", err)
	}
	return nil
}

func (r *secondaryDiagnosisRepository) Get(ctx context.Context, id uuid.UUID) (*model.SecondaryDiagnosis, error) {
	query := `SELECT * FROM diagnosticos_secundarios WHERE id_diag_sec = $1`
	var diagnosis model.SecondaryDiagnosis
	err := r.db.GetContext(ctx, &diagnosis, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("secondary diagnosis", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get secondary diagnosis: %w", err)
	}
	return &diagnosis, nil
}

func (r *secondaryDiagnosisRepository) Update(ctx context.Context, diagnosis *model.SecondaryDiagnosis) error {
	query := `UPDATE diagnosticos_secundarios SET diagnostico = $1, estado = $2 WHERE id_diag_sec = $3`
	_, err := r.db.ExecContext(ctx, query, diagnosis.Diagnosis, diagnosis.Estado, diagnosis.ID)
	if err != nil {
		return fmt.Errorf("failed to update secondary diagnosis: %w", err)
	}
	return nil
}

func (r *secondaryDiagnosisRepository) List(ctx context.Context, filter *model.SecondaryDiagnosisFilter) ([]*model.SecondaryDiagnosis, error) {
	qb := &queryBuilder{}
	if filter.AdmissionID != "" {
		qb.Eq("id_admision", filter.AdmissionID)
	}
	if filter.Diagnosis != "" {
		qb.ILike("diagnostico", filter.Diagnosis)
	}
	if filter.Estado != "" {
		qb.Eq("estado", filter.Estado)
	}

	query, args := qb.Build(`SELECT * FROM diagnosticos_secundarios`)

	diagnoses := []*model.SecondaryDiagnosis{}
	if err := r.db.SelectContext(ctx, &diagnoses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list secondary diagnoses: %w", err)
	}
	return diagnoses, nil
}

func (r *secondaryDiagnosisRepository) ListByAdmission(ctx context.Context, admissionID uuid.UUID) ([]*model.SecondaryDiagnosis, error) {
	query := `SELECT * FROM diagnosticos_secundarios WHERE id_admision = $1`
	diagnoses := []*model.SecondaryDiagnosis{}
	if err := r.db.SelectContext(ctx, &diagnoses, query, admissionID); err != nil {
		return nil, fmt.Errorf("failed to list diagnoses for admission: %w", err)
	}
	return diagnoses, nil
}
