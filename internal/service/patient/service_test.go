package patient

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

type fakePatientRepo struct {
	patients map[uuid.UUID]*model.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uuid.UUID]*model.Patient)}
}

func (r *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	p.CreatedAt = time.Now()
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *fakePatientRepo) Get(_ context.Context, id uuid.UUID) (*model.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, errors.NotFound("patient", nil)
	}
	cp := *p
	return &cp, nil
}

func (r *fakePatientRepo) Update(_ context.Context, p *model.Patient) error {
	if _, ok := r.patients[p.ID]; !ok {
		return errors.NotFound("patient", nil)
	}
	cp := *p
	r.patients[p.ID] = &cp
	return nil
}

func (r *fakePatientRepo) List(_ context.Context, _ *model.PatientFilter) ([]*model.Patient, error) {
	out := make([]*model.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakePatientRepo) ListByEstado(_ context.Context, estado model.Lifecycle) ([]*model.Patient, error) {
	var out []*model.Patient
	for _, p := range r.patients {
		if p.Estado == estado {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func dateOf(t time.Time) *model.Date {
	return &model.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func TestCreatePatient(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	birth := dateOf(time.Now().AddDate(-30, 0, 0))
	created, err := svc.Create(context.Background(), &model.CreatePatientRequest{
		FirstName: "Maria",
		LastName:  "Lopez",
		BirthDate: birth,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, model.LifecycleActive, created.Estado)
}

func TestCreatePatientBirthDateValidation(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	tests := []struct {
		name      string
		birthDate *model.Date
		wantErr   bool
	}{
		{"nil birth date accepted", nil, false},
		{"adult accepted", dateOf(time.Now().AddDate(-40, 0, 0)), false},
		{"exactly one month old accepted", dateOf(time.Now().AddDate(0, 0, -30)), false},
		{"ten days old rejected", dateOf(time.Now().AddDate(0, 0, -10)), true},
		{"born today rejected", dateOf(time.Now()), true},
		{"future date rejected", dateOf(time.Now().AddDate(1, 0, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &model.CreatePatientRequest{
				FirstName: "Ana",
				LastName:  "Garcia",
				BirthDate: tt.birthDate,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrBadRequest))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePatientRevalidatesBirthDate(t *testing.T) {
	repo := newFakePatientRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), &model.CreatePatientRequest{
		FirstName: "Luis",
		LastName:  "Perez",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &model.UpdatePatientRequest{
		BirthDate: dateOf(time.Now().AddDate(0, 0, -5)),
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	newName := "Luis Alberto"
	updated, err := svc.Update(context.Background(), created.ID, &model.UpdatePatientRequest{
		FirstName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.FirstName)
}

func TestPatientLifecycleTransitions(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	created, err := svc.Create(context.Background(), &model.CreatePatientRequest{
		FirstName: "Carmen",
		LastName:  "Diaz",
	})
	require.NoError(t, err)

	// Reactivating an active patient is rejected.
	_, err = svc.Reactivate(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	deactivated, err := svc.Deactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleInactive, deactivated.Estado)

	// Deactivating twice is rejected.
	_, err = svc.Deactivate(context.Background(), created.ID)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrBadRequest))

	reactivated, err := svc.Reactivate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.LifecycleActive, reactivated.Estado)
}

func TestPatientLifecycleNotFound(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	_, err := svc.Deactivate(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrNotFound))
}

func TestListPatientsByEstado(t *testing.T) {
	svc := NewService(newFakePatientRepo())

	first, err := svc.Create(context.Background(), &model.CreatePatientRequest{FirstName: "A", LastName: "B"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &model.CreatePatientRequest{FirstName: "C", LastName: "D"})
	require.NoError(t, err)

	_, err = svc.Deactivate(context.Background(), first.ID)
	require.NoError(t, err)

	active, err := svc.ListByEstado(context.Background(), model.LifecycleActive)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	inactive, err := svc.ListByEstado(context.Background(), model.LifecycleInactive)
	require.NoError(t, err)
	assert.Len(t, inactive, 1)
	assert.Equal(t, first.ID, inactive[0].ID)
}
