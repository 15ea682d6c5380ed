// Package appointment is the booking ledger: every appointment record
// lives here, and all status transitions go through this service.
package appointment

import (
	"context"
	"time"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/internal/repository"
	"github.com/jwalitptl/clinic-booking-api/internal/simulate"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
	"github.com/jwalitptl/clinic-booking-api/pkg/logger"
)

// Notifier delivers booking lifecycle notifications. Failures are logged
// and never fail the booking.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, user *model.User, apt *model.Appointment) error
	SendCancellation(ctx context.Context, user *model.User, apt *model.Appointment) error
}

type Service struct {
	repo     repository.AppointmentRepository
	doctors  repository.DoctorRepository
	slots    repository.AvailabilityRepository
	notifier Notifier
	log      *logger.Logger
	latency  time.Duration
}

func NewService(repo repository.AppointmentRepository, doctors repository.DoctorRepository,
	slots repository.AvailabilityRepository, notifier Notifier, log *logger.Logger, latency time.Duration) *Service {
	return &Service{
		repo:     repo,
		doctors:  doctors,
		slots:    slots,
		notifier: notifier,
		log:      log,
		latency:  latency,
	}
}

// ListForUser is a pure filter over the ledger: patients see their own
// appointments, doctors see the ones they hold, every other role sees
// nothing.
func (s *Service) ListForUser(ctx context.Context, user *model.User) ([]*model.Appointment, error) {
	if user == nil {
		return nil, errors.Unauthorized("")
	}
	switch user.Role {
	case model.RolePatient:
		return s.repo.ListByPatient(ctx, user.ID)
	case model.RoleDoctor:
		return s.repo.ListByDoctor(ctx, user.ID)
	default:
		return []*model.Appointment{}, nil
	}
}

// Create books the appointment and the underlying slot in one step. The
// slot matching (doctor, date, time) must exist and be free; it is
// flipped to booked before the record is written and released again if
// the write fails.
func (s *Service) Create(ctx context.Context, user *model.User, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if user == nil {
		return nil, errors.Unauthorized("you must be logged in to book an appointment")
	}

	if _, err := s.doctors.Get(ctx, req.DoctorID); err != nil {
		return nil, err
	}

	if err := simulate.Wait(ctx, s.latency); err != nil {
		return nil, err
	}

	if _, err := s.slots.Book(ctx, req.DoctorID, req.Date, req.Time); err != nil {
		return nil, err
	}

	now := time.Now()
	apt := &model.Appointment{
		ID:         model.NewID("appointment"),
		PatientID:  user.ID,
		DoctorID:   req.DoctorID,
		Date:       req.Date,
		Time:       req.Time,
		Status:     model.AppointmentStatusScheduled,
		Symptoms:   req.Symptoms,
		Conditions: req.Conditions,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, apt); err != nil {
		if relErr := s.slots.Release(ctx, req.DoctorID, req.Date, req.Time); relErr != nil {
			s.log.Error(relErr, "failed to release slot after booking failure",
				"doctor_id", req.DoctorID, "date", req.Date, "time", req.Time)
		}
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.SendBookingConfirmation(ctx, user, apt); err != nil {
			s.log.Error(err, "failed to send booking confirmation", "appointment_id", apt.ID)
		}
	}

	s.log.Info("appointment booked", "appointment_id", apt.ID, "patient_id", apt.PatientID, "doctor_id", apt.DoctorID)
	return apt, nil
}

// Get returns an appointment to one of its participants.
func (s *Service) Get(ctx context.Context, user *model.User, id string) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(user, apt); err != nil {
		return nil, err
	}
	return apt, nil
}

// Cancel moves a scheduled appointment to cancelled and releases its
// slot. Unknown ids surface NotFound; terminal appointments reject.
func (s *Service) Cancel(ctx context.Context, user *model.User, id string) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(user, apt); err != nil {
		return nil, err
	}
	if apt.Status.Terminal() {
		return nil, errors.Conflict("appointment is already " + string(apt.Status))
	}

	if err := simulate.Wait(ctx, s.latency); err != nil {
		return nil, err
	}

	apt.Status = model.AppointmentStatusCancelled
	apt.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, err
	}

	if err := s.slots.Release(ctx, apt.DoctorID, apt.Date, apt.Time); err != nil {
		// Seeded historical appointments may predate any slot grid.
		s.log.Debug("no slot to release for cancelled appointment", "appointment_id", apt.ID)
	}

	if s.notifier != nil {
		if err := s.notifier.SendCancellation(ctx, user, apt); err != nil {
			s.log.Error(err, "failed to send cancellation notice", "appointment_id", apt.ID)
		}
	}

	s.log.Info("appointment cancelled", "appointment_id", apt.ID)
	return apt, nil
}

// Complete marks a scheduled appointment completed. Doctor-side only.
func (s *Service) Complete(ctx context.Context, user *model.User, id string, notes string) (*model.Appointment, error) {
	apt, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Unauthorized("")
	}
	if !user.IsDoctor() || apt.DoctorID != user.ID {
		return nil, errors.Forbidden("only the treating doctor can complete an appointment")
	}
	if apt.Status.Terminal() {
		return nil, errors.Conflict("appointment is already " + string(apt.Status))
	}

	apt.Status = model.AppointmentStatusCompleted
	if notes != "" {
		apt.Notes = notes
	}
	apt.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, apt); err != nil {
		return nil, err
	}

	s.log.Info("appointment completed", "appointment_id", apt.ID)
	return apt, nil
}

func (s *Service) authorize(user *model.User, apt *model.Appointment) error {
	if user == nil {
		return errors.Unauthorized("")
	}
	if apt.PatientID != user.ID && apt.DoctorID != user.ID {
		return errors.Forbidden("not a participant of this appointment")
	}
	return nil
}
