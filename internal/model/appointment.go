package model

import "time"

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Terminal reports whether no further status transition is allowed.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// Appointment is one booked visit. Owned by the booking ledger; patient
// and doctor views are filtered projections of the same records.
type Appointment struct {
	ID         string            `json:"id"`
	PatientID  string            `json:"patient_id"`
	DoctorID   string            `json:"doctor_id"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Status     AppointmentStatus `json:"status"`
	Symptoms   string            `json:"symptoms,omitempty"`
	Conditions []Condition       `json:"conditions,omitempty"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// CreateAppointmentRequest represents booking parameters
type CreateAppointmentRequest struct {
	DoctorID   string      `json:"doctor_id" binding:"required"`
	Date       string      `json:"date" binding:"required,datetime=2006-01-02"`
	Time       string      `json:"time" binding:"required,datetime=15:04"`
	Symptoms   string      `json:"symptoms"`
	Conditions []Condition `json:"conditions"`
}
