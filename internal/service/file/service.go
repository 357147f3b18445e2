package file

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/repository"
	"github.com/inaaqc/clinical-api/internal/storage"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type Service struct {
	repo  repository.FileRepository
	store storage.Store
}

func NewService(repo repository.FileRepository, store storage.Store) *Service {
	return &Service{repo: repo, store: store}
}

// normalizeExtension lower-cases the client filename's extension and folds
// jpeg into jpg. An empty string means the extension is not acceptable.
func normalizeExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	ext := strings.ToLower(filename[idx+1:])
	if ext == "jpeg" {
		ext = model.FileTypeJPG
	}
	switch ext {
	case model.FileTypePDF, model.FileTypeJPG, model.FileTypePNG:
		return ext
	}
	return ""
}

// Upload validates the extension before anything touches disk, stores the
// payload under the fresh identifier and records the measured byte size.
func (s *Service) Upload(ctx context.Context, filename string, uploadedBy *uuid.UUID, r io.Reader) (*model.File, error) {
	ext := normalizeExtension(filename)
	if ext == "" {
		return nil, errors.BadRequest("file type not allowed (only pdf, jpg, png)", nil)
	}

	id := uuid.New()
	path, size, err := s.store.Save(id.String()+"."+ext, r)
	if err != nil {
		return nil, errors.Internal("failed to store file", err)
	}

	file := &model.File{
		ID:          id,
		Name:        filename,
		StoragePath: path,
		Type:        ext,
		SizeBytes:   size,
		UploadedBy:  uploadedBy,
		Estado:      model.LifecycleActive,
	}

	if err := s.repo.Create(ctx, file); err != nil {
		s.store.Remove(path)
		return nil, err
	}
	return file, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.File, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, filter *model.FileFilter) ([]*model.File, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// Download resolves the record and checks the backing file is still on disk.
// A present row without its file is a server-side inconsistency, distinct
// from a missing record.
func (s *Service) Download(ctx context.Context, id uuid.UUID) (*model.File, error) {
	file, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.store.Exists(file.StoragePath) {
		return nil, errors.Internal("file record exists but the stored file is missing", nil)
	}
	return file, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateFileRequest) (*model.File, error) {
	file, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		file.Name = *req.Name
	}
	if req.Type != nil {
		file.Type = *req.Type
	}
	if req.Estado != nil {
		file.Estado = *req.Estado
	}

	if err := s.repo.Update(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*model.File, error) {
	file, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if file.Estado == model.LifecycleInactive {
		return nil, errors.BadRequest("file is already inactive", nil)
	}

	file.Estado = model.LifecycleInactive
	if err := s.repo.Update(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

func (s *Service) Reactivate(ctx context.Context, id uuid.UUID) (*model.File, error) {
	file, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if file.Estado == model.LifecycleActive {
		return nil, errors.BadRequest("file is already active", nil)
	}

	file.Estado = model.LifecycleActive
	if err := s.repo.Update(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

// Delete removes the on-disk file best-effort before the database row.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	file, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Remove(file.StoragePath); err != nil {
		return errors.Internal("failed to remove stored file", err)
	}
	return s.repo.Delete(ctx, file.ID)
}
