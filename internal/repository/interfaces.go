package repository

import (
	"context"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
)

// All repository interfaces in one file
type (
	// UserRepository is the identity directory. Logout clears the session,
	// never the user record.
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id string) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
	}

	// DoctorRepository holds doctors and their specialty reference data.
	DoctorRepository interface {
		Get(ctx context.Context, id string) (*model.Doctor, error)
		ListBySpecialty(ctx context.Context, specialtyID string) ([]*model.Doctor, error)
		ListSpecialties(ctx context.Context) ([]*model.Specialty, error)
		GetSpecialty(ctx context.Context, id string) (*model.Specialty, error)
	}

	// AvailabilityRepository exclusively owns slot state. Booking and
	// releasing a slot go through here and nowhere else.
	AvailabilityRepository interface {
		ListSlots(ctx context.Context, doctorID, date string) ([]*model.Availability, error)
		Book(ctx context.Context, doctorID, date, startTime string) (*model.Availability, error)
		Release(ctx context.Context, doctorID, date, startTime string) error
	}

	// AppointmentRepository owns appointment records. Records are never
	// deleted, only status transitions are written back.
	AppointmentRepository interface {
		Create(ctx context.Context, apt *model.Appointment) error
		Get(ctx context.Context, id string) (*model.Appointment, error)
		Update(ctx context.Context, apt *model.Appointment) error
		ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error)
		ListByDoctor(ctx context.Context, doctorID string) ([]*model.Appointment, error)
	}
)
