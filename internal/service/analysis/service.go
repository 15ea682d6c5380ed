// Package analysis implements the keyword symptom analyzer. It is a
// deliberate stub behind a fixed contract: free text in, candidate
// conditions with urgency out. Anything honoring the contract and the
// escalation rules can replace it.
package analysis

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/internal/simulate"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

// Trigger phrases, matched as case-insensitive substrings.
var (
	highTriggers      = []string{"chest pain", "difficulty breathing", "severe"}
	emergencyTriggers = []string{"emergency", "cannot breathe", "unconscious"}
)

// Confidence is randomized per call within this band.
const (
	confidenceMin = 0.5
	confidenceMax = 0.95
)

type Service struct {
	catalog []model.Condition
	advice  []string
	latency time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds an analyzer over the given condition catalog. Only
// catalog entries carrying remedies are offered as candidates; the rng is
// injectable so tests can pin the confidence scores.
func NewService(catalog []model.Condition, advice []string, latency time.Duration, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	candidates := make([]model.Condition, 0, len(catalog))
	for _, c := range catalog {
		if len(c.Remedies) > 0 {
			candidates = append(candidates, c)
		}
	}
	return &Service{catalog: candidates, advice: advice, latency: latency, rng: rng}
}

// Analyze interprets the symptom description. Input length policy is the
// caller's; Analyze itself accepts any text.
func (s *Service) Analyze(ctx context.Context, symptoms string) (*model.SymptomAnalysisResult, error) {
	if err := simulate.Wait(ctx, s.latency); err != nil {
		return nil, err
	}

	urgency := classifyUrgency(symptoms)
	elevated := urgency.AtLeast(model.UrgencyHigh)

	conditions := make([]model.Condition, len(s.catalog))
	copy(conditions, s.catalog)
	for i := range conditions {
		conditions[i].Confidence = s.confidence()
		conditions[i].UrgencyLevel = urgency
		if elevated {
			conditions[i].SeekMedicalAttention = true
		}
	}

	result := &model.SymptomAnalysisResult{
		Symptoms:      symptoms,
		Conditions:    conditions,
		UrgencyLevel:  urgency,
		GeneralAdvice: s.advice,
	}
	result.RecommendedSpecialty = s.recommendSpecialty(conditions)
	if len(result.Conditions) == 0 {
		return nil, errors.Service("symptom analysis produced no conditions", nil)
	}
	return result, nil
}

func classifyUrgency(symptoms string) model.UrgencyLevel {
	lower := strings.ToLower(symptoms)
	urgency := model.UrgencyLow
	for _, phrase := range highTriggers {
		if strings.Contains(lower, phrase) {
			urgency = model.UrgencyHigh
			break
		}
	}
	// Emergency triggers win over high.
	for _, phrase := range emergencyTriggers {
		if strings.Contains(lower, phrase) {
			urgency = model.UrgencyEmergency
			break
		}
	}
	return urgency
}

// confidence draws from [0.65, 0.95) and clamps into the contract band.
func (s *Service) confidence() float64 {
	s.mu.Lock()
	v := s.rng.Float64()*0.3 + 0.65
	s.mu.Unlock()
	if v < confidenceMin {
		v = confidenceMin
	}
	if v > confidenceMax {
		v = confidenceMax
	}
	return v
}

// recommendSpecialty picks the specialty of the highest-confidence
// condition that has one.
func (s *Service) recommendSpecialty(conditions []model.Condition) *model.Specialty {
	best := -1
	for i, c := range conditions {
		if c.SpecialtyID == "" {
			continue
		}
		if best == -1 || c.Confidence > conditions[best].Confidence {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	return &model.Specialty{ID: conditions[best].SpecialtyID}
}
