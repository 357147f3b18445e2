package model

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/inaaqc/clinical-api/pkg/errors"
)

// Allowed upload extensions; "jpeg" is normalized to "jpg" before the check.
const (
	FileTypePDF = "pdf"
	FileTypeJPG = "jpg"
	FileTypePNG = "png"
)

// File represents an uploaded document (archivo) stored on disk under the
// configured upload root and keyed by its identifier.
type File struct {
	ID          uuid.UUID  `db:"id_archivo" json:"id_archivo"`
	Name        string     `db:"nombre_archivo" json:"nombre_archivo"`
	StoragePath string     `db:"ruta_almacenamiento" json:"ruta_almacenamiento"`
	Type        string     `db:"tipo_archivo" json:"tipo_archivo"`
	SizeBytes   int64      `db:"tamano_bytes" json:"tamano_bytes"`
	UploadedBy  *uuid.UUID `db:"subido_por" json:"subido_por"`
	UploadedAt  time.Time  `db:"subido_en" json:"subido_en"`
	Estado      Lifecycle  `db:"estado" json:"estado"`
}

type UpdateFileRequest struct {
	Name   *string    `json:"nombre_archivo"`
	Type   *string    `json:"tipo_archivo" binding:"omitempty,oneof=pdf jpg png"`
	Estado *Lifecycle `json:"estado" binding:"omitempty,estado"`
}

type FileFilter struct {
	Name         string     `form:"nombre_archivo"`
	Type         string     `form:"tipo_archivo" binding:"omitempty,oneof=pdf jpg png"`
	UploadedBy   string     `form:"subido_por" binding:"omitempty,uuid"`
	Estado       string     `form:"estado" binding:"omitempty,estado"`
	UploadedFrom *time.Time `form:"subido_en_inicio"`
	UploadedTo   *time.Time `form:"subido_en_fin"`
}

func (f *FileFilter) Validate() error {
	if !bothOrNeither(f.UploadedFrom, f.UploadedTo) {
		return apperrors.BadRequest("both bounds of the subido_en range must be supplied", nil)
	}
	return nil
}
