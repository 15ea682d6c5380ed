package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

// AvailabilityRepository is the single writer of slot state. Grids are
// keyed by doctor and date; a date nobody seeded gets the default
// half-hour grid materialized on first access so bookings against it
// stick.
type AvailabilityRepository struct {
	mu    sync.Mutex
	grids map[string][]*model.Availability
}

func NewAvailabilityRepository(seed []*model.Availability) *AvailabilityRepository {
	r := &AvailabilityRepository{grids: make(map[string][]*model.Availability)}
	for _, slot := range seed {
		cp := *slot
		key := gridKey(slot.DoctorID, slot.Date)
		r.grids[key] = append(r.grids[key], &cp)
	}
	return r
}

func gridKey(doctorID, date string) string {
	return doctorID + "|" + date
}

func (r *AvailabilityRepository) ListSlots(ctx context.Context, doctorID, date string) ([]*model.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	grid := r.grid(doctorID, date)
	out := make([]*model.Availability, 0, len(grid))
	for _, slot := range grid {
		cp := *slot
		out = append(out, &cp)
	}
	return out, nil
}

func (r *AvailabilityRepository) Book(ctx context.Context, doctorID, date, startTime string) (*model.Availability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range r.grid(doctorID, date) {
		if slot.StartTime != startTime {
			continue
		}
		if slot.IsBooked {
			return nil, errors.Conflict("slot is already booked")
		}
		slot.IsBooked = true
		cp := *slot
		return &cp, nil
	}
	return nil, errors.NotFound("slot")
}

func (r *AvailabilityRepository) Release(ctx context.Context, doctorID, date, startTime string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, slot := range r.grid(doctorID, date) {
		if slot.StartTime == startTime {
			slot.IsBooked = false
			return nil
		}
	}
	return errors.NotFound("slot")
}

// grid must be called with the lock held.
func (r *AvailabilityRepository) grid(doctorID, date string) []*model.Availability {
	key := gridKey(doctorID, date)
	if g, ok := r.grids[key]; ok {
		return g
	}
	g := defaultGrid(doctorID, date)
	r.grids[key] = g
	return g
}

// defaultGrid mirrors the demo dataset's fallback schedule: half-hour
// slots from 09:00 to 11:30 with the 10:00 slot taken.
func defaultGrid(doctorID, date string) []*model.Availability {
	times := [][2]string{
		{"09:00", "09:30"},
		{"09:30", "10:00"},
		{"10:00", "10:30"},
		{"10:30", "11:00"},
		{"11:00", "11:30"},
	}
	grid := make([]*model.Availability, 0, len(times))
	for i, t := range times {
		grid = append(grid, &model.Availability{
			ID:        fmt.Sprintf("slot-%d", i+1),
			DoctorID:  doctorID,
			Date:      date,
			StartTime: t[0],
			EndTime:   t[1],
			IsBooked:  t[0] == "10:00",
		})
	}
	return grid
}
