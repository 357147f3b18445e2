package model

import (
	"time"

	"github.com/google/uuid"
)

// OCRText (ocr crudo) holds text extracted from one page of an uploaded file
// by an external OCR producer.
type OCRText struct {
	ID        uuid.UUID  `db:"id_ocr" json:"id_ocr"`
	FileID    *uuid.UUID `db:"id_archivo" json:"id_archivo"`
	Page      *int       `db:"pagina" json:"pagina"`
	Text      *string    `db:"texto" json:"texto"`
	Metadata  JSONMap    `db:"metadata" json:"metadata"`
	CreatedAt time.Time  `db:"creado_en" json:"creado_en"`
}

type CreateOCRTextRequest struct {
	FileID   uuid.UUID `json:"id_archivo" binding:"required"`
	Page     int       `json:"pagina" binding:"required"`
	Text     string    `json:"texto" binding:"required"`
	Metadata JSONMap   `json:"metadata"`
}

type UpdateOCRTextRequest struct {
	Page     *int    `json:"pagina"`
	Text     *string `json:"texto"`
	Metadata JSONMap `json:"metadata"`
}

type OCRTextFilter struct {
	FileID string `form:"id_archivo" binding:"omitempty,uuid"`
	Page   *int   `form:"pagina"`
}
