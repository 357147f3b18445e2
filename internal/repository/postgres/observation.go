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

type observationRepository struct {
	db *sqlx.DB
}

func NewObservationRepository(db *sqlx.DB) repository.ObservationRepository {
	return &observationRepository{db: db}
}

func (r *observationRepository) Create(ctx context.Context, observation *model.Observation) error {
	query := `
		INSERT INTO observaciones (id_observacion, id_paciente, id_admision, id_tipo_obs, id_archivo, id_ocr,
			fecha_hora, valor_numerico, valor_texto, unidad, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	observation.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		observation.ID,
		observation.PatientID,
		observation.AdmissionID,
		observation.TypeID,
		observation.FileID,
		observation.OCRID,
		observation.ObservedAt,
		observation.NumericValue,
		observation.TextValue,
		observation.Unit,
		observation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}
	return nil
}

func (r *observationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Observation, error) {
	query := `SELECT * FROM observaciones WHERE id_observacion = $1`
	var observation model.Observation
	err := r.db.GetContext(ctx, &observation, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("observation", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get observation: %w", err)
	}
	return &observation, nil
}

func (r *observationRepository) Update(ctx context.Context, observation *model.Observation) error {
	query := `
		UPDATE observaciones
		SET id_paciente = $1, id_admision = $2, id_tipo_obs = $3, id_archivo = $4, id_ocr = $5,
			fecha_hora = $6, valor_numerico = $7, valor_texto = $8, unidad = $9
		WHERE id_observacion = $10
	`
	_, err := r.db.ExecContext(ctx, query,
		observation.PatientID,
		observation.AdmissionID,
		observation.TypeID,
		observation.FileID,
		observation.OCRID,
		observation.ObservedAt,
		observation.NumericValue,
		observation.TextValue,
		observation.Unit,
		observation.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update observation: %w", err)
	}
	return nil
}

func (r *observationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM observaciones WHERE id_observacion = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete observation: %w", err)
	}
	return nil
}

func (r *observationRepository) List(ctx context.Context, filter *model.ObservationFilter) ([]*model.Observation, error) {
	qb := &queryBuilder{}
	if filter.PatientID != "" {
		qb.Eq("id_paciente", filter.PatientID)
	}
	if filter.AdmissionID != "" {
		qb.Eq("id_admision", filter.AdmissionID)
	}
	if filter.TypeID != "" {
		qb.Eq("id_tipo_obs", filter.TypeID)
	}
	if filter.FileID != "" {
		qb.Eq("id_archivo", filter.FileID)
	}
	if filter.OCRID != "" {
		qb.Eq("id_ocr", filter.OCRID)
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil {
		qb.Between("creado_en", *filter.CreatedFrom, *filter.CreatedTo)
	}
	if filter.ObservedFrom != nil && filter.ObservedTo != nil {
		qb.Between("fecha_hora", *filter.ObservedFrom, *filter.ObservedTo)
	}
	if filter.NumericFrom != nil && filter.NumericTo != nil {
		qb.Between("valor_numerico", *filter.NumericFrom, *filter.NumericTo)
	}
	if filter.TextValue != "" {
		qb.ILike("valor_texto", filter.TextValue)
	}
	if filter.Unit != "" {
		qb.ILike("unidad", filter.Unit)
	}

	query, args := qb.Build(`SELECT * FROM observaciones`)

	observations := []*model.Observation{}
	if err := r.db.SelectContext(ctx, &observations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	return observations, nil
}
