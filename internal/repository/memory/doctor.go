package memory

import (
	"context"
	"sync"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

// DoctorRepository holds the doctor roster and specialty reference data.
// Both are static after seeding, so reads take the lock only to stay
// consistent with the rest of the memory package.
type DoctorRepository struct {
	mu          sync.RWMutex
	doctors     map[string]*model.Doctor
	specialties map[string]*model.Specialty
	order       []string
}

func NewDoctorRepository(doctors []*model.Doctor, specialties []*model.Specialty) *DoctorRepository {
	r := &DoctorRepository{
		doctors:     make(map[string]*model.Doctor, len(doctors)),
		specialties: make(map[string]*model.Specialty, len(specialties)),
	}
	for _, s := range specialties {
		cp := *s
		r.specialties[s.ID] = &cp
		r.order = append(r.order, s.ID)
	}
	for _, d := range doctors {
		cp := *d
		r.doctors[d.ID] = &cp
	}
	return r
}

func (r *DoctorRepository) Get(ctx context.Context, id string) (*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.doctors[id]
	if !ok {
		return nil, errors.NotFound("doctor")
	}
	return r.withSpecialty(d), nil
}

func (r *DoctorRepository) ListBySpecialty(ctx context.Context, specialtyID string) ([]*model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Doctor, 0)
	for _, d := range r.doctors {
		if d.SpecialtyID == specialtyID {
			matched = append(matched, r.withSpecialty(d))
		}
	}
	return matched, nil
}

func (r *DoctorRepository) ListSpecialties(ctx context.Context) ([]*model.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Specialty, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.specialties[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *DoctorRepository) GetSpecialty(ctx context.Context, id string) (*model.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.specialties[id]
	if !ok {
		return nil, errors.NotFound("specialty")
	}
	cp := *s
	return &cp, nil
}

func (r *DoctorRepository) withSpecialty(d *model.Doctor) *model.Doctor {
	cp := *d
	if s, ok := r.specialties[d.SpecialtyID]; ok {
		sc := *s
		cp.Specialty = &sc
	}
	return &cp
}
