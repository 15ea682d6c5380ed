package model

// Specialty is static reference data describing a medical discipline
type Specialty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Doctor represents a bookable clinician
type Doctor struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	SpecialtyID string     `json:"specialty_id"`
	Specialty   *Specialty `json:"specialty,omitempty"`
}

// Availability is a fixed time interval for one doctor on one date,
// bookable at most once.
type Availability struct {
	ID        string `json:"id"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsBooked  bool   `json:"is_booked"`
}
