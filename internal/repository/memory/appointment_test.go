package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

func TestListByPatientSortedByDateTime(t *testing.T) {
	repo := NewAppointmentRepository(NewSeedData().Appointments)

	list, err := repo.ListByPatient(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "appointment-2", list[0].ID) // 2025-05-05 before 2025-05-12
	assert.Equal(t, "appointment-1", list[1].ID)
}

func TestGetReturnsIsolatedCopy(t *testing.T) {
	repo := NewAppointmentRepository(NewSeedData().Appointments)
	ctx := context.Background()

	a, err := repo.Get(ctx, "appointment-1")
	require.NoError(t, err)
	a.Status = model.AppointmentStatusCancelled
	a.Conditions[0].Name = "mutated"

	again, err := repo.Get(ctx, "appointment-1")
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusScheduled, again.Status)
	assert.Equal(t, "Common Cold", again.Conditions[0].Name)
}

func TestCreateDuplicateID(t *testing.T) {
	repo := NewAppointmentRepository(NewSeedData().Appointments)

	err := repo.Create(context.Background(), &model.Appointment{ID: "appointment-1"})
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestUpdateUnknownID(t *testing.T) {
	repo := NewAppointmentRepository(nil)

	err := repo.Update(context.Background(), &model.Appointment{ID: "appointment-404"})
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
