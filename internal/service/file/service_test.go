package file

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/internal/storage"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type fakeFileRepo struct {
	files map[uuid.UUID]*model.File
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[uuid.UUID]*model.File)}
}

func (r *fakeFileRepo) Create(_ context.Context, f *model.File) error {
	f.UploadedAt = time.Now()
	cp := *f
	r.files[f.ID] = &cp
	return nil
}

func (r *fakeFileRepo) Get(_ context.Context, id uuid.UUID) (*model.File, error) {
	f, ok := r.files[id]
	if !ok {
		return nil, errors.NotFound("file", nil)
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFileRepo) Update(_ context.Context, f *model.File) error {
	if _, ok := r.files[f.ID]; !ok {
		return errors.NotFound("file", nil)
	}
	cp := *f
	r.files[f.ID] = &cp
	return nil
}

func (r *fakeFileRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.files[id]; !ok {
		return errors.NotFound("file", nil)
	}
	delete(r.files, id)
	return nil
}

func (r *fakeFileRepo) List(_ context.Context, _ *model.FileFilter) ([]*model.File, error) {
	out := make([]*model.File, 0, len(r.files))
	for _, f := range r.files {
		cp := *f
		out = append(out, &cp)
	}
	return out, nil
}

func newTestService(t *testing.T) (*Service, *fakeFileRepo) {
	t.Helper()
	store, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	repo := newFakeFileRepo()
	return NewService(repo, store), repo
}

func TestUploadExtensionGate(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		filename string
		wantType string
		wantErr  bool
	}{
		{"informe.pdf", "pdf", false},
		{"scan.PNG", "png", false},
		{"foto.jpg", "jpg", false},
		{"foto.JPEG", "jpg", false},
		{"nota.txt", "", true},
		{"malware.exe", "", true},
		{"sinextension", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			created, err := svc.Upload(context.Background(), tt.filename, nil, strings.NewReader("contenido"))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrBadRequest))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, created.Type)
			assert.Equal(t, tt.filename, created.Name)
		})
	}
}

func TestUploadMeasuresSizeFromDisk(t *testing.T) {
	svc, _ := newTestService(t)

	payload := "doce bytes.."
	created, err := svc.Upload(context.Background(), "informe.pdf", nil, strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), created.SizeBytes)

	info, err := os.Stat(created.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), created.SizeBytes)
}

func TestUploadRecordsUploader(t *testing.T) {
	svc, _ := newTestService(t)

	userID := uuid.New()
	created, err := svc.Upload(context.Background(), "scan.png", &userID, strings.NewReader("x"))
	require.NoError(t, err)
	require.NotNil(t, created.UploadedBy)
	assert.Equal(t, userID, *created.UploadedBy)
	assert.Equal(t, model.LifecycleActive, created.Estado)
}

func TestDownloadMissingBackingFile(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Upload(context.Background(), "informe.pdf", nil, strings.NewReader("contenido"))
	require.NoError(t, err)

	require.NoError(t, os.Remove(created.StoragePath))

	_, err = svc.Download(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInternal))
}

func TestDownloadUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Download(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))
}

func TestDeleteRemovesRowAndBytes(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Upload(context.Background(), "foto.jpg", nil, strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = os.Stat(created.StoragePath)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, repo.files)
}

func TestFileLifecycleTransitions(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Upload(context.Background(), "foto.jpg", nil, strings.NewReader("x"))
	require.NoError(t, err)

	deactivated, err := svc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleInactive, deactivated.Estado)

	_, err = svc.Deactivate(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	reactivated, err := svc.Reactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleActive, reactivated.Estado)
}

func TestListFilesRangeFilter(t *testing.T) {
	svc, _ := newTestService(t)
	now := time.Now()

	_, err := svc.List(context.Background(), &model.FileFilter{UploadedFrom: &now})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	later := now.Add(time.Hour)
	_, err = svc.List(context.Background(), &model.FileFilter{UploadedFrom: &now, UploadedTo: &later})
	assert.NoError(t, err)
}
