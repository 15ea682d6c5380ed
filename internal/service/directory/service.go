// Package directory is the read side of availability: specialties,
// doctors, and the open slots of a doctor's day.
package directory

import (
	"context"
	"sort"
	"time"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/internal/repository"
	"github.com/jwalitptl/clinic-booking-api/internal/simulate"
)

type Service struct {
	doctors repository.DoctorRepository
	slots   repository.AvailabilityRepository
	latency time.Duration
}

func NewService(doctors repository.DoctorRepository, slots repository.AvailabilityRepository, latency time.Duration) *Service {
	return &Service{doctors: doctors, slots: slots, latency: latency}
}

func (s *Service) ListSpecialties(ctx context.Context) ([]*model.Specialty, error) {
	return s.doctors.ListSpecialties(ctx)
}

func (s *Service) GetSpecialty(ctx context.Context, id string) (*model.Specialty, error) {
	return s.doctors.GetSpecialty(ctx, id)
}

// ListDoctorsBySpecialty never fails on an unknown specialty; it just
// matches nothing.
func (s *Service) ListDoctorsBySpecialty(ctx context.Context, specialtyID string) ([]*model.Doctor, error) {
	doctors, err := s.doctors.ListBySpecialty(ctx, specialtyID)
	if err != nil {
		return nil, err
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].ID < doctors[j].ID })
	return doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*model.Doctor, error) {
	return s.doctors.Get(ctx, id)
}

// GetSlots returns the doctor's open slots for a date, ordered by start
// time. A booked slot never appears here.
func (s *Service) GetSlots(ctx context.Context, doctorID, date string) ([]*model.Availability, error) {
	if err := simulate.Wait(ctx, s.latency); err != nil {
		return nil, err
	}
	if _, err := s.doctors.Get(ctx, doctorID); err != nil {
		return nil, err
	}

	all, err := s.slots.ListSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	open := make([]*model.Availability, 0, len(all))
	for _, slot := range all {
		if !slot.IsBooked {
			open = append(open, slot)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i].StartTime < open[j].StartTime })
	return open, nil
}
