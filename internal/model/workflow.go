package model

import "time"

// WorkflowStage is one step of the symptom-to-booking flow
type WorkflowStage string

const (
	StageInput         WorkflowStage = "input"
	StageAnalyzing     WorkflowStage = "analyzing"
	StageResults       WorkflowStage = "results"
	StageSlotSelection WorkflowStage = "slot-selection"
	StageConfirmed     WorkflowStage = "confirmed"
)

// WorkflowSession is the per-user state of one symptom-to-booking run.
// Held server-side; the client only ever sees snapshots of it.
type WorkflowSession struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	Stage       WorkflowStage          `json:"stage"`
	Symptoms    string                 `json:"symptoms,omitempty"`
	Analysis    *SymptomAnalysisResult `json:"analysis,omitempty"`
	SpecialtyID string                 `json:"specialty_id,omitempty"`
	Appointment *Appointment           `json:"appointment,omitempty"`
	LastError   string                 `json:"last_error,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// SubmitSymptomsRequest carries the free-text symptom description
type SubmitSymptomsRequest struct {
	Symptoms string `json:"symptoms" binding:"required"`
}

// BeginBookingRequest optionally overrides the recommended specialty
type BeginBookingRequest struct {
	SpecialtyID string `json:"specialty_id"`
}

// ConfirmBookingRequest selects the doctor and slot to book
type ConfirmBookingRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// BookingConfirmation is returned after a successful booking, with the
// dashboard the client should redirect to and how long to wait first.
type BookingConfirmation struct {
	Appointment     *Appointment `json:"appointment"`
	RedirectTo      string       `json:"redirect_to"`
	RedirectAfterMS int64        `json:"redirect_after_ms"`
}
