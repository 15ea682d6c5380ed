package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

// AppointmentRepository keeps the full appointment history in memory.
// Records are append-and-update only.
type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments map[string]*model.Appointment
}

func NewAppointmentRepository(seed []*model.Appointment) *AppointmentRepository {
	appointments := make(map[string]*model.Appointment, len(seed))
	for _, a := range seed {
		cp := cloneAppointment(a)
		appointments[a.ID] = cp
	}
	return &AppointmentRepository{appointments: appointments}
}

func (r *AppointmentRepository) Create(ctx context.Context, apt *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appointments[apt.ID]; exists {
		return errors.Conflict("appointment id already exists")
	}
	r.appointments[apt.ID] = cloneAppointment(apt)
	return nil
}

func (r *AppointmentRepository) Get(ctx context.Context, id string) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, errors.NotFound("appointment")
	}
	return cloneAppointment(a), nil
}

func (r *AppointmentRepository) Update(ctx context.Context, apt *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[apt.ID]; !ok {
		return errors.NotFound("appointment")
	}
	r.appointments[apt.ID] = cloneAppointment(apt)
	return nil
}

func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.Appointment, error) {
	return r.list(func(a *model.Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*model.Appointment, error) {
	return r.list(func(a *model.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *AppointmentRepository) list(match func(*model.Appointment) bool) []*model.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Appointment, 0)
	for _, a := range r.appointments {
		if match(a) {
			out = append(out, cloneAppointment(a))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// cloneAppointment copies the record and its condition snapshot so
// callers can never mutate ledger state through a returned pointer.
func cloneAppointment(a *model.Appointment) *model.Appointment {
	cp := *a
	if a.Conditions != nil {
		cp.Conditions = make([]model.Condition, len(a.Conditions))
		copy(cp.Conditions, a.Conditions)
	}
	return &cp
}
