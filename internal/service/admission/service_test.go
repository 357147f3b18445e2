package admission

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inaaqc/clinical-api/internal/model"
	"github.com/inaaqc/clinical-api/pkg/errors"
)

type fakeAdmissionRepo struct {
	admissions map[uuid.UUID]*model.Admission
}

func newFakeAdmissionRepo() *fakeAdmissionRepo {
	return &fakeAdmissionRepo{admissions: make(map[uuid.UUID]*model.Admission)}
}

func (r *fakeAdmissionRepo) Create(_ context.Context, a *model.Admission) error {
	a.CreatedAt = time.Now()
	cp := *a
	r.admissions[a.ID] = &cp
	return nil
}

func (r *fakeAdmissionRepo) Get(_ context.Context, id uuid.UUID) (*model.Admission, error) {
	a, ok := r.admissions[id]
	if !ok {
		return nil, errors.NotFound("admission", nil)
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAdmissionRepo) Update(_ context.Context, a *model.Admission) error {
	if _, ok := r.admissions[a.ID]; !ok {
		return errors.NotFound("admission", nil)
	}
	cp := *a
	r.admissions[a.ID] = &cp
	return nil
}

func (r *fakeAdmissionRepo) List(_ context.Context, _ *model.AdmissionFilter) ([]*model.Admission, error) {
	out := make([]*model.Admission, 0, len(r.admissions))
	for _, a := range r.admissions {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func TestCreateAdmissionDateOrder(t *testing.T) {
	svc := NewService(newFakeAdmissionRepo())
	admitted := time.Now()

	before := admitted.Add(-24 * time.Hour)
	_, err := svc.Create(context.Background(), &model.CreateAdmissionRequest{
		PatientID:    uuid.New(),
		AdmittedAt:   admitted,
		DischargedAt: &before,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	after := admitted.Add(24 * time.Hour)
	created, err := svc.Create(context.Background(), &model.CreateAdmissionRequest{
		PatientID:    uuid.New(),
		AdmittedAt:   admitted,
		DischargedAt: &after,
	})
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleActive, created.Estado)
}

func TestCreateAdmissionOpenStay(t *testing.T) {
	svc := NewService(newFakeAdmissionRepo())

	created, err := svc.Create(context.Background(), &model.CreateAdmissionRequest{
		PatientID:  uuid.New(),
		AdmittedAt: time.Now(),
	})
	require.NoError(t, err)
	assert.Nil(t, created.DischargedAt)
}

func TestUpdateAdmissionValidatesMergedDates(t *testing.T) {
	svc := NewService(newFakeAdmissionRepo())
	admitted := time.Now()
	discharged := admitted.Add(48 * time.Hour)

	created, err := svc.Create(context.Background(), &model.CreateAdmissionRequest{
		PatientID:    uuid.New(),
		AdmittedAt:   admitted,
		DischargedAt: &discharged,
	})
	require.NoError(t, err)

	// Moving only fecha_ingreso past the stored discharge must fail.
	late := discharged.Add(time.Hour)
	_, err = svc.Update(context.Background(), created.ID, &model.UpdateAdmissionRequest{
		AdmittedAt: &late,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	// Moving only fecha_salida before the stored admission must fail.
	early := admitted.Add(-time.Hour)
	_, err = svc.Update(context.Background(), created.ID, &model.UpdateAdmissionRequest{
		DischargedAt: &early,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	// A consistent pair is accepted.
	newAdmitted := admitted.Add(time.Hour)
	newDischarged := discharged.Add(time.Hour)
	updated, err := svc.Update(context.Background(), created.ID, &model.UpdateAdmissionRequest{
		AdmittedAt:   &newAdmitted,
		DischargedAt: &newDischarged,
	})
	require.NoError(t, err)
	assert.True(t, updated.AdmittedAt.Equal(newAdmitted))
}

func TestAdmissionLifecycleTransitions(t *testing.T) {
	svc := NewService(newFakeAdmissionRepo())

	created, err := svc.Create(context.Background(), &model.CreateAdmissionRequest{
		PatientID:  uuid.New(),
		AdmittedAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.Reactivate(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	deactivated, err := svc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleInactive, deactivated.Estado)

	_, err = svc.Deactivate(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))
}

func TestListAdmissionsRangeFilter(t *testing.T) {
	svc := NewService(newFakeAdmissionRepo())
	now := time.Now()

	// Half-open ranges are rejected before the repository is touched.
	_, err := svc.List(context.Background(), &model.AdmissionFilter{AdmittedFrom: &now})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	_, err = svc.List(context.Background(), &model.AdmissionFilter{DischargedTo: &now})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	later := now.Add(time.Hour)
	_, err = svc.List(context.Background(), &model.AdmissionFilter{AdmittedFrom: &now, AdmittedTo: &later})
	assert.NoError(t, err)

	_, err = svc.List(context.Background(), &model.AdmissionFilter{})
	assert.NoError(t, err)
}
