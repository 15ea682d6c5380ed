package analysis

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/internal/repository/memory"
)

func newTestService(latency time.Duration) *Service {
	rng := rand.New(rand.NewSource(42))
	return NewService(memory.ConditionCatalog(), memory.GeneralAdvice(), latency, rng)
}

func TestAnalyzeLowUrgency(t *testing.T) {
	svc := newTestService(0)

	result, err := svc.Analyze(context.Background(), "I've had a headache for 3 days with some dizziness")
	require.NoError(t, err)

	assert.Equal(t, model.UrgencyLow, result.UrgencyLevel)
	require.NotEmpty(t, result.Conditions)
	for _, c := range result.Conditions {
		assert.GreaterOrEqual(t, c.Confidence, 0.5)
		assert.LessOrEqual(t, c.Confidence, 0.95)
		assert.Equal(t, model.UrgencyLow, c.UrgencyLevel)
	}
	assert.NotEmpty(t, result.GeneralAdvice)
}

func TestAnalyzeHighUrgencyTriggers(t *testing.T) {
	svc := newTestService(0)

	for _, text := range []string{
		"I have CHEST PAIN since this morning",
		"experiencing difficulty breathing at night",
		"a severe headache that will not stop",
	} {
		result, err := svc.Analyze(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, model.UrgencyHigh, result.UrgencyLevel, "text: %s", text)
		for _, c := range result.Conditions {
			assert.True(t, c.SeekMedicalAttention, "text: %s", text)
		}
	}
}

func TestAnalyzeEmergencyTriggers(t *testing.T) {
	svc := newTestService(0)

	for _, text := range []string{
		"this is an EMERGENCY please help",
		"my father cannot breathe properly",
		"she was unconscious for a minute",
		// Emergency wins even when a high trigger is also present.
		"severe pain and I think it is an emergency",
	} {
		result, err := svc.Analyze(context.Background(), text)
		require.NoError(t, err)
		assert.Equal(t, model.UrgencyEmergency, result.UrgencyLevel, "text: %s", text)
		for _, c := range result.Conditions {
			assert.True(t, c.SeekMedicalAttention, "text: %s", text)
		}
	}
}

func TestAnalyzeRecommendsSpecialty(t *testing.T) {
	svc := newTestService(0)

	result, err := svc.Analyze(context.Background(), "runny nose and sneezing for a week")
	require.NoError(t, err)
	require.NotNil(t, result.RecommendedSpecialty)
	assert.Equal(t, "specialty-1", result.RecommendedSpecialty.ID)
}

func TestAnalyzeEchoesSymptoms(t *testing.T) {
	svc := newTestService(0)

	text := "mild sore throat and a cough"
	result, err := svc.Analyze(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, text, result.Symptoms)
}

func TestAnalyzeDeterministicWithSeededRand(t *testing.T) {
	a := NewService(memory.ConditionCatalog(), memory.GeneralAdvice(), 0, rand.New(rand.NewSource(7)))
	b := NewService(memory.ConditionCatalog(), memory.GeneralAdvice(), 0, rand.New(rand.NewSource(7)))

	ra, err := a.Analyze(context.Background(), "stuffy nose and watery eyes")
	require.NoError(t, err)
	rb, err := b.Analyze(context.Background(), "stuffy nose and watery eyes")
	require.NoError(t, err)

	require.Equal(t, len(ra.Conditions), len(rb.Conditions))
	for i := range ra.Conditions {
		assert.Equal(t, ra.Conditions[i].Confidence, rb.Conditions[i].Confidence)
	}
}

func TestAnalyzeRespectsContextCancellation(t *testing.T) {
	svc := newTestService(500 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, "some symptoms that take a while to analyze")
	assert.ErrorIs(t, err, context.Canceled)
}
