package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-booking-api/internal/repository/memory"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

func newTestService() (*Service, *memory.AvailabilityRepository) {
	seed := memory.NewSeedData()
	doctors := memory.NewDoctorRepository(seed.Doctors, seed.Specialties)
	slots := memory.NewAvailabilityRepository(seed.Slots)
	return NewService(doctors, slots, 0), slots
}

func TestListDoctorsBySpecialty(t *testing.T) {
	svc, _ := newTestService()

	doctors, err := svc.ListDoctorsBySpecialty(context.Background(), "specialty-1")
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "user-2", doctors[0].ID)
	require.NotNil(t, doctors[0].Specialty)
	assert.Equal(t, "General Practitioner", doctors[0].Specialty.Name)
}

func TestListDoctorsByUnknownSpecialtyIsEmpty(t *testing.T) {
	svc, _ := newTestService()

	doctors, err := svc.ListDoctorsBySpecialty(context.Background(), "specialty-999")
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestGetDoctorNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetDoctor(context.Background(), "user-999")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestGetSlotsFiltersBookedAndSorts(t *testing.T) {
	svc, _ := newTestService()

	slots, err := svc.GetSlots(context.Background(), "user-2", "2025-05-15")
	require.NoError(t, err)
	require.Len(t, slots, 2)

	for i, slot := range slots {
		assert.False(t, slot.IsBooked)
		if i > 0 {
			assert.Less(t, slots[i-1].StartTime, slot.StartTime)
		}
	}
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[1].StartTime)
}

func TestGetSlotsGeneratesDefaultGrid(t *testing.T) {
	svc, _ := newTestService()

	slots, err := svc.GetSlots(context.Background(), "user-3", "2025-06-01")
	require.NoError(t, err)
	require.Len(t, slots, 4)
	for _, slot := range slots {
		assert.NotEqual(t, "10:00", slot.StartTime, "pre-booked default slot must be filtered")
	}
}

func TestGetSlotsUnknownDoctor(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetSlots(context.Background(), "user-999", "2025-06-01")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestGetSlotsReflectsBooking(t *testing.T) {
	svc, slots := newTestService()

	_, err := slots.Book(context.Background(), "user-2", "2025-05-15", "09:00")
	require.NoError(t, err)

	open, err := svc.GetSlots(context.Background(), "user-2", "2025-05-15")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "09:30", open[0].StartTime)
}
