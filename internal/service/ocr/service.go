package ocr

import (
	"context"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
)

type Service struct {
	repo     repository.OCRTextRepository
	fileRepo repository.FileRepository
}

func NewService(repo repository.OCRTextRepository, fileRepo repository.FileRepository) *Service {
	return &Service{repo: repo, fileRepo: fileRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateOCRTextRequest) (*model.OCRText, error) {
	if _, err := s.fileRepo.Get(ctx, req.FileID); err != nil {
		return nil, err
	}

	fileID := req.FileID
	page := req.Page
	text := req.Text
	ocr := &model.OCRText{
		ID:       uuid.New(),
		FileID:   &fileID,
		Page:     &page,
		Text:     &text,
		Metadata: req.Metadata,
	}

	if err := s.repo.Create(ctx, ocr); err != nil {
		return nil, err
	}
	return ocr, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.OCRText, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.OCRTextFilter) ([]*model.OCRText, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateOCRTextRequest) (*model.OCRText, error) {
	ocr, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Page != nil {
		ocr.Page = req.Page
	}
	if req.Text != nil {
		ocr.Text = req.Text
	}
	if req.Metadata != nil {
		ocr.Metadata = req.Metadata
	}

	if err := s.repo.Update(ctx, ocr); err != nil {
		return nil, err
	}
	return ocr, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
