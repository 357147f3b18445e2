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

type fileRepository struct {
	db *sqlx.DB
}

func NewFileRepository(db *sqlx.DB) repository.FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(ctx context.Context, file *model.File) error {
	query := `
		INSERT INTO archivos (id_archivo, nombre_archivo, ruta_almacenamiento, tipo_archivo, tamano_bytes, subido_por, subido_en, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	file.UploadedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		file.ID,
		file.Name,
		file.StoragePath,
		file.Type,
		file.SizeBytes,
		file.UploadedBy,
		file.UploadedAt,
		file.Estado,
	)
	if err != nil {
		return fmt.Errorf("failed to create file record: %w", err)
	}
	return nil
}

func (r *fileRepository) Get(ctx context.Context, id uuid.UUID) (*model.File, error) {
	query := `SELECT * FROM archivos WHERE id_archivo = $1`
	var file model.File
	err := r.db.GetContext(ctx, &file, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("file", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file: %w", err)
	}
	return &file, nil
}

func (r *fileRepository) Update(ctx context.Context, file *model.File) error {
	query := `UPDATE archivos SET nombre_archivo = $1, tipo_archivo = $2, estado = $3 WHERE id_archivo = $4`
	_, err := r.db.ExecContext(ctx, query, file.Name, file.Type, file.Estado, file.ID)
	if err != nil {
		return fmt.Errorf("failed to update file: %w", err)
	}
	return nil
}

func (r *fileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM archivos WHERE id_archivo = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	return nil
}

func (r *fileRepository) List(ctx context.Context, filter *model.FileFilter) ([]*model.File, error) {
	qb := &queryBuilder{}
	if filter.Name != "" {
		qb.ILike("nombre_archivo", filter.Name)
	}
	if filter.Type != "" {
		qb.Eq("tipo_archivo", filter.Type)
	}
	if filter.UploadedBy != "" {
		qb.Eq("subido_por", filter.UploadedBy)
	}
	if filter.Estado != "" {
		qb.Eq("estado", filter.Estado)
	}
	if filter.UploadedFrom != nil && filter.UploadedTo != nil {
		qb.Between("subido_en", *filter.UploadedFrom, *filter.UploadedTo)
	}

	query, args := qb.Build(`SELECT * FROM archivos`)

	files := []*model.File{}
	if err := r.db.SelectContext(ctx, &files, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}
