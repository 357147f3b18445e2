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

type observationTypeRepository struct {
	db *sqlx.DB
}

func NewObservationTypeRepository(db *sqlx.DB) repository.ObservationTypeRepository {
	return &observationTypeRepository{db: db}
}

func (r *observationTypeRepository) Create(ctx context.Context, obsType *model.ObservationType) error {
	query := `
		INSERT INTO tipos_observacion (id_tipo_obs, codigo, nombre, categoria, unidad_default, creado_en, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	obsType.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		obsType.ID,
		obsType.Code,
		obsType.Name,
		obsType.Category,
		obsType.DefaultUnit,
		obsType.CreatedAt,
		obsType.Estado,
	)
	if err != nil {
		return fmt.Errorf("failed to create observation type: %w", err)
	}
	return nil
}

func (r *observationTypeRepository) Get(ctx context.Context, id uuid.UUID) (*model.ObservationType, error) {
	query := `SELECT * FROM tipos_observacion WHERE id_tipo_obs = $1`
	var obsType model.ObservationType
	err := r.db.GetContext(ctx, &obsType, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("observation type", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get observation type: %w", err)
	}
	return &obsType, nil
}

func (r *observationTypeRepository) Update(ctx context.Context, obsType *model.ObservationType) error {
	query := `
		UPDATE tipos_observacion
		SET codigo = $1, nombre = $2, categoria = $3, unidad_default = $4, estado = $5
		WHERE id_tipo_obs = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		obsType.Code,
		obsType.Name,
		obsType.Category,
		obsType.DefaultUnit,
		obsType.Estado,
		obsType.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update observation type: %w", err)
	}
	return nil
}

func (r *observationTypeRepository) List(ctx context.Context, filter *model.ObservationTypeFilter) ([]*model.ObservationType, error) {
	qb := &queryBuilder{}
	if filter.Code != "" {
		qb.Eq("codigo", filter.Code)
	}
	if filter.Name != "" {
		qb.ILike("nombre", filter.Name)
	}
	if filter.Category != "" {
		qb.Eq("categoria", filter.Category)
	}
	if filter.DefaultUnit != "" {
		qb.Eq("unidad_default", filter.DefaultUnit)
	}
	if filter.Estado != "" {
		qb.Eq("estado", filter.Estado)
	}
	if filter.CreatedFrom != nil && filter.CreatedTo != nil {
		qb.Between("creado_en", *filter.CreatedFrom, *filter.CreatedTo)
	}

	query, args := qb.Build(`SELECT * FROM tipos_observacion`)

	types := []*model.ObservationType{}
	if err := r.db.SelectContext(ctx, &types, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list observation types: %w", err)
	}
	return types, nil
}
