package model

// UrgencyLevel is an ordinal classification driving medical-attention flags
type UrgencyLevel string

const (
	UrgencyLow       UrgencyLevel = "low"
	UrgencyMedium    UrgencyLevel = "medium"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyEmergency UrgencyLevel = "emergency"
)

var urgencyRank = map[UrgencyLevel]int{
	UrgencyLow:       0,
	UrgencyMedium:    1,
	UrgencyHigh:      2,
	UrgencyEmergency: 3,
}

// AtLeast reports whether u is at or above the given level.
func (u UrgencyLevel) AtLeast(other UrgencyLevel) bool {
	return urgencyRank[u] >= urgencyRank[other]
}

// Remedy is a self-care suggestion attached to a condition
type Remedy struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Ingredients   []string `json:"ingredients"`
	Instructions  []string `json:"instructions"`
	Warnings      []string `json:"warnings,omitempty"`
	Effectiveness float64  `json:"effectiveness"`
}

// Condition is a candidate diagnosis produced by symptom analysis.
// Attached read-only to an appointment at booking time.
type Condition struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Description          string       `json:"description"`
	Confidence           float64      `json:"confidence"`
	SpecialtyID          string       `json:"specialty_id,omitempty"`
	UrgencyLevel         UrgencyLevel `json:"urgency_level"`
	SeekMedicalAttention bool         `json:"seek_medical_attention"`
	Remedies             []Remedy     `json:"remedies,omitempty"`
	PreventionTips       []string     `json:"prevention_tips,omitempty"`
}

// SymptomAnalysisResult is the structured output of symptom interpretation
type SymptomAnalysisResult struct {
	Symptoms             string       `json:"symptoms"`
	Conditions           []Condition  `json:"conditions"`
	UrgencyLevel         UrgencyLevel `json:"urgency_level"`
	GeneralAdvice        []string     `json:"general_advice"`
	RecommendedSpecialty *Specialty   `json:"recommended_specialty,omitempty"`
}
