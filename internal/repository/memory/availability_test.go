package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

func TestBookFlipsSlotOnce(t *testing.T) {
	repo := NewAvailabilityRepository(NewSeedData().Slots)
	ctx := context.Background()

	slot, err := repo.Book(ctx, "user-2", "2025-05-15", "09:00")
	require.NoError(t, err)
	assert.True(t, slot.IsBooked)

	_, err = repo.Book(ctx, "user-2", "2025-05-15", "09:00")
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestBookSeededBookedSlot(t *testing.T) {
	repo := NewAvailabilityRepository(NewSeedData().Slots)

	_, err := repo.Book(context.Background(), "user-2", "2025-05-15", "10:00")
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestBookMissingSlot(t *testing.T) {
	repo := NewAvailabilityRepository(NewSeedData().Slots)

	_, err := repo.Book(context.Background(), "user-2", "2025-05-15", "23:00")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestReleaseMakesSlotBookable(t *testing.T) {
	repo := NewAvailabilityRepository(NewSeedData().Slots)
	ctx := context.Background()

	require.NoError(t, repo.Release(ctx, "user-2", "2025-05-15", "10:00"))

	_, err := repo.Book(ctx, "user-2", "2025-05-15", "10:00")
	assert.NoError(t, err)
}

func TestDefaultGridMaterializesOnce(t *testing.T) {
	repo := NewAvailabilityRepository(nil)
	ctx := context.Background()

	slots, err := repo.ListSlots(ctx, "user-2", "2025-07-01")
	require.NoError(t, err)
	require.Len(t, slots, 5)
	for _, s := range slots {
		assert.Equal(t, s.StartTime == "10:00", s.IsBooked)
	}

	// Bookings against the generated grid stick.
	_, err = repo.Book(ctx, "user-2", "2025-07-01", "09:00")
	require.NoError(t, err)
	slots, err = repo.ListSlots(ctx, "user-2", "2025-07-01")
	require.NoError(t, err)
	booked := 0
	for _, s := range slots {
		if s.IsBooked {
			booked++
		}
	}
	assert.Equal(t, 2, booked)
}

func TestListSlotsReturnsCopies(t *testing.T) {
	repo := NewAvailabilityRepository(NewSeedData().Slots)
	ctx := context.Background()

	slots, err := repo.ListSlots(ctx, "user-2", "2025-05-15")
	require.NoError(t, err)
	slots[0].IsBooked = true

	again, err := repo.ListSlots(ctx, "user-2", "2025-05-15")
	require.NoError(t, err)
	assert.False(t, again[0].IsBooked)
}
