package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
)

// SeedPassword is the password every demo account accepts.
const SeedPassword = "password123"

// SeedData is the demo dataset the repositories start from.
type SeedData struct {
	Users        []*model.User
	Specialties  []*model.Specialty
	Doctors      []*model.Doctor
	Slots        []*model.Availability
	Appointments []*model.Appointment
}

// NewSeedData builds the demo clinic: three accounts, five specialties,
// two doctors with a slot grid each, and two historical appointments.
func NewSeedData() *SeedData {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	now := time.Now()

	specialties := []*model.Specialty{
		{ID: "specialty-1", Name: "General Practitioner", Description: "Provides primary healthcare for various conditions"},
		{ID: "specialty-2", Name: "Dermatologist", Description: "Specializes in skin conditions and diseases"},
		{ID: "specialty-3", Name: "Cardiologist", Description: "Specializes in heart-related conditions"},
		{ID: "specialty-4", Name: "Neurologist", Description: "Specializes in conditions affecting the nervous system"},
		{ID: "specialty-5", Name: "Gastroenterologist", Description: "Specializes in digestive system disorders"},
	}

	users := []*model.User{
		{ID: "user-1", Name: "John Smith", Email: "patient@example.com", Role: model.RolePatient, PasswordHash: string(hash), CreatedAt: now},
		{ID: "user-2", Name: "Dr. Sarah Johnson", Email: "doctor@example.com", Role: model.RoleDoctor, SpecialtyID: "specialty-1", PasswordHash: string(hash), CreatedAt: now},
		{ID: "user-3", Name: "Dr. Michael Chen", Email: "doctor2@example.com", Role: model.RoleDoctor, SpecialtyID: "specialty-2", PasswordHash: string(hash), CreatedAt: now},
	}

	doctors := []*model.Doctor{
		{ID: "user-2", Name: "Dr. Sarah Johnson", SpecialtyID: "specialty-1"},
		{ID: "user-3", Name: "Dr. Michael Chen", SpecialtyID: "specialty-2"},
	}

	slots := []*model.Availability{
		{ID: "avail-1", DoctorID: "user-2", Date: "2025-05-15", StartTime: "09:00", EndTime: "09:30"},
		{ID: "avail-2", DoctorID: "user-2", Date: "2025-05-15", StartTime: "09:30", EndTime: "10:00"},
		{ID: "avail-3", DoctorID: "user-2", Date: "2025-05-15", StartTime: "10:00", EndTime: "10:30", IsBooked: true},
		{ID: "avail-4", DoctorID: "user-3", Date: "2025-05-15", StartTime: "13:00", EndTime: "13:30"},
		{ID: "avail-5", DoctorID: "user-3", Date: "2025-05-15", StartTime: "13:30", EndTime: "14:00"},
		{ID: "avail-6", DoctorID: "user-3", Date: "2025-05-15", StartTime: "14:00", EndTime: "14:30"},
	}

	catalog := ConditionCatalog()
	appointments := []*model.Appointment{
		{
			ID:         "appointment-1",
			PatientID:  "user-1",
			DoctorID:   "user-2",
			Date:       "2025-05-12",
			Time:       "10:00",
			Status:     model.AppointmentStatusScheduled,
			Symptoms:   "Headache, fever, and sore throat for the past 3 days",
			Conditions: []model.Condition{catalog[0], catalog[1]},
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		{
			ID:         "appointment-2",
			PatientID:  "user-1",
			DoctorID:   "user-3",
			Date:       "2025-05-05",
			Time:       "14:30",
			Status:     model.AppointmentStatusCompleted,
			Symptoms:   "Itchy, red patches on skin",
			Conditions: []model.Condition{catalog[2]},
			Notes:      "Prescribed hydrocortisone cream and antihistamines",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	return &SeedData{
		Users:        users,
		Specialties:  specialties,
		Doctors:      doctors,
		Slots:        slots,
		Appointments: appointments,
	}
}

// ConditionCatalog is the reference list of known conditions with their
// specialty links. The first entries carry the self-care content the
// analyzer hands back.
func ConditionCatalog() []model.Condition {
	return []model.Condition{
		{
			ID:                   "condition-1",
			Name:                 "Common Cold",
			Description:          "A viral infection causing nasal congestion, sore throat, and mild fever",
			Confidence:           0.85,
			SpecialtyID:          "specialty-1",
			UrgencyLevel:         model.UrgencyLow,
			SeekMedicalAttention: false,
			Remedies:             []model.Remedy{gingerTea(), steamInhalation()},
			PreventionTips: []string{
				"Wash hands frequently",
				"Get adequate sleep",
				"Stay hydrated",
				"Eat vitamin C rich foods",
			},
		},
		{
			ID:                   "condition-2",
			Name:                 "Seasonal Allergies",
			Description:          "Allergic reaction to pollen and other seasonal allergens",
			Confidence:           0.75,
			SpecialtyID:          "specialty-1",
			UrgencyLevel:         model.UrgencyLow,
			SeekMedicalAttention: false,
			Remedies:             []model.Remedy{nasalIrrigation()},
			PreventionTips: []string{
				"Monitor pollen forecasts",
				"Keep windows closed during high pollen times",
				"Shower after being outdoors",
				"Use air purifiers",
			},
		},
		{
			ID:           "condition-3",
			Name:         "Eczema",
			Description:  "A condition that makes your skin red and itchy",
			Confidence:   0.92,
			SpecialtyID:  "specialty-2",
			UrgencyLevel: model.UrgencyLow,
		},
		{
			ID:           "condition-4",
			Name:         "Hypertension",
			Description:  "High blood pressure that can lead to serious health problems",
			Confidence:   0.88,
			SpecialtyID:  "specialty-3",
			UrgencyLevel: model.UrgencyMedium,
		},
		{
			ID:           "condition-5",
			Name:         "Migraine",
			Description:  "A headache of varying intensity, often accompanied by nausea and sensitivity to light and sound",
			Confidence:   0.83,
			SpecialtyID:  "specialty-4",
			UrgencyLevel: model.UrgencyMedium,
		},
	}
}

// GeneralAdvice is returned verbatim with every analysis result.
func GeneralAdvice() []string {
	return []string{
		"Stay hydrated by drinking plenty of water",
		"Get adequate rest to support your body's healing",
		"Maintain good hygiene practices",
		"Monitor your symptoms and seek medical attention if they worsen",
	}
}

func gingerTea() model.Remedy {
	return model.Remedy{
		ID:          "remedy-1",
		Title:       "Ginger Tea",
		Description: "A natural anti-inflammatory and digestive aid",
		Ingredients: []string{"Fresh ginger root", "Hot water", "Honey (optional)", "Lemon (optional)"},
		Instructions: []string{
			"Peel and slice 2-3 pieces of fresh ginger",
			"Boil water and add ginger",
			"Steep for 5-10 minutes",
			"Add honey and lemon if desired",
		},
		Warnings:      []string{"Avoid if you have bleeding disorders or are on blood thinners"},
		Effectiveness: 0.8,
	}
}

func steamInhalation() model.Remedy {
	return model.Remedy{
		ID:          "remedy-2",
		Title:       "Steam Inhalation",
		Description: "Helps clear nasal passages and reduce congestion",
		Ingredients: []string{"Hot water", "Essential oils (optional)", "Large towel"},
		Instructions: []string{
			"Boil water in a large bowl",
			"Add essential oils if desired",
			"Cover head with towel",
			"Inhale steam for 5-10 minutes",
		},
		Warnings:      []string{"Keep face at least 12 inches from water", "Stop if feeling uncomfortable"},
		Effectiveness: 0.75,
	}
}

func nasalIrrigation() model.Remedy {
	return model.Remedy{
		ID:          "remedy-3",
		Title:       "Nasal Irrigation",
		Description: "Cleans nasal passages of allergens",
		Ingredients: []string{"Distilled water", "Salt", "Baking soda", "Neti pot"},
		Instructions: []string{
			"Mix 1 cup distilled water with 1/4 tsp each of salt and baking soda",
			"Use neti pot to irrigate nasal passages",
			"Repeat morning and evening",
		},
		Warnings:      []string{"Use only distilled or boiled water", "Clean neti pot after each use"},
		Effectiveness: 0.85,
	}
}
