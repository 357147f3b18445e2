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

type ocrTextRepository struct {
	db *sqlx.DB
}

func NewOCRTextRepository(db *sqlx.DB) repository.OCRTextRepository {
	return &ocrTextRepository{db: db}
}

func (r *ocrTextRepository) Create(ctx context.Context, ocr *model.OCRText) error {
	query := `
		INSERT INTO ocr_crudo (id_ocr, id_archivo, pagina, texto, metadata, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	ocr.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		ocr.ID,
		ocr.FileID,
		ocr.Page,
		ocr.Text,
		ocr.Metadata,
		ocr.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ocr text: %w", err)
	}
	return nil
}

func (r *ocrTextRepository) Get(ctx context.Context, id uuid.UUID) (*model.OCRText, error) {
	query := `SELECT * FROM ocr_crudo WHERE id_ocr = $1`
	var ocr model.OCRText
	err := r.db.GetContext(ctx, &ocr, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("ocr text", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ocr text: %w", err)
	}
	return &ocr, nil
}

func (r *ocrTextRepository) Update(ctx context.Context, ocr *model.OCRText) error {
	query := `UPDATE ocr_crudo SET pagina = $1, texto = $2, metadata = $3 WHERE id_ocr = $4`
	_, err := r.db.ExecContext(ctx, query, ocr.Page, ocr.Text, ocr.Metadata, ocr.ID)
	if err != nil {
		return fmt.Errorf("failed to update ocr text: %w", err)
	}
	return nil
}

func (r *ocrTextRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM ocr_crudo WHERE id_ocr = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete ocr text: %w", err)
	}
	return nil
}

func (r *ocrTextRepository) List(ctx context.Context, filter *model.OCRTextFilter) ([]*model.OCRText, error) {
	qb := &queryBuilder{}
	if filter.FileID != "" {
		qb.Eq("id_archivo", filter.FileID)
	}
	if filter.Page != nil {
		qb.Eq("pagina", *filter.Page)
	}

	query, args := qb.Build(`SELECT * FROM ocr_crudo`)

	texts := []*model.OCRText{}
	if err := r.db.SelectContext(ctx, &texts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list ocr texts: %w", err)
	}
	return texts, nil
}
