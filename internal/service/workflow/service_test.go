package workflow

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/internal/repository/memory"
	"github.com/jwalitptl/clinic-booking-api/internal/service/analysis"
	"github.com/jwalitptl/clinic-booking-api/internal/service/appointment"
	"github.com/jwalitptl/clinic-booking-api/internal/service/directory"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
	"github.com/jwalitptl/clinic-booking-api/pkg/logger"
)

type fixture struct {
	svc     *Service
	patient *model.User
	doctor  *model.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	seed := memory.NewSeedData()
	log := logger.NewLogger(nil)

	doctors := memory.NewDoctorRepository(seed.Doctors, seed.Specialties)
	slots := memory.NewAvailabilityRepository(seed.Slots)
	appointments := memory.NewAppointmentRepository(seed.Appointments)

	analyzer := analysis.NewService(memory.ConditionCatalog(), memory.GeneralAdvice(), 0, rand.New(rand.NewSource(1)))
	dir := directory.NewService(doctors, slots, 0)
	ledger := appointment.NewService(appointments, doctors, slots, nil, log, 0)

	return &fixture{
		svc:     NewService(analyzer, dir, ledger, log, time.Minute),
		patient: seed.Users[0],
		doctor:  seed.Users[1],
	}
}

func TestStartOpensInputStage(t *testing.T) {
	f := newFixture(t)

	session, err := f.svc.Start(context.Background(), f.patient)
	require.NoError(t, err)
	assert.Equal(t, model.StageInput, session.Stage)
	assert.Equal(t, f.patient.ID, session.UserID)
}

func TestSubmitShortSymptomsRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Start(ctx, f.patient)
	require.NoError(t, err)

	_, err = f.svc.SubmitSymptoms(ctx, f.patient, session.ID, "  tired  ")
	assert.True(t, errors.Is(err, errors.ErrValidation))

	// Still at input, nothing analyzed.
	session, err = f.svc.Get(ctx, f.patient, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StageInput, session.Stage)
	assert.Nil(t, session.Analysis)
}

func TestSubmitSymptomsCarriesResultsForward(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Start(ctx, f.patient)
	require.NoError(t, err)

	session, err = f.svc.SubmitSymptoms(ctx, f.patient, session.ID, "I've had a headache for 3 days with some dizziness")
	require.NoError(t, err)

	assert.Equal(t, model.StageResults, session.Stage)
	require.NotNil(t, session.Analysis)
	assert.Equal(t, model.UrgencyLow, session.Analysis.UrgencyLevel)
	assert.NotEmpty(t, session.Analysis.Conditions)

	// The recommendation is resolved to a full specialty record.
	require.NotNil(t, session.Analysis.RecommendedSpecialty)
	assert.Equal(t, "specialty-1", session.Analysis.RecommendedSpecialty.ID)
	assert.Equal(t, "General Practitioner", session.Analysis.RecommendedSpecialty.Name)
}

func TestBeginBookingUsesRecommendation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Start(ctx, f.patient)
	require.NoError(t, err)
	_, err = f.svc.SubmitSymptoms(ctx, f.patient, session.ID, "sneezing and congestion for two weeks")
	require.NoError(t, err)

	session, err = f.svc.BeginBooking(ctx, f.patient, session.ID, "")
	require.NoError(t, err)
	assert.Equal(t, model.StageSlotSelection, session.Stage)
	assert.Equal(t, "specialty-1", session.SpecialtyID)
}

func TestBeginBookingWithExplicitSpecialty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// No analysis at all: booking starts from an explicit choice.
	session, err := f.svc.Start(ctx, f.patient)
	require.NoError(t, err)

	session, err = f.svc.BeginBooking(ctx, f.patient, session.ID, "specialty-2")
	require.NoError(t, err)
	assert.Equal(t, "specialty-2", session.SpecialtyID)
}

func TestBeginBookingWithoutSpecialtyRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Start(ctx, f.patient)
	require.NoError(t, err)

	_, err = f.svc.BeginBooking(ctx, f.patient, session.ID, "")
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestConfirmBookingRequiresDoctorAndTime(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Start(ctx, f.patient)
	require.NoError(t, err)
	_, err = f.svc.BeginBooking(ctx, f.patient, session.ID, "specialty-1")
	require.NoError(t, err)

	_, err = f.svc.ConfirmBooking(ctx, f.patient, session.ID, &model.ConfirmBookingRequest{
		Date: "2025-05-16",
	})
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestConfirmBookingEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Start(ctx, f.patient)
	require.NoError(t, err)
	_, err = f.svc.SubmitSymptoms(ctx, f.patient, session.ID, "I've had a headache for 3 days with some dizziness")
	require.NoError(t, err)
	_, err = f.svc.BeginBooking(ctx, f.patient, session.ID, "")
	require.NoError(t, err)

	confirmation, err := f.svc.ConfirmBooking(ctx, f.patient, session.ID, &model.ConfirmBookingRequest{
		DoctorID: "user-2",
		Date:     "2025-05-16",
		Time:     "09:00",
	})
	require.NoError(t, err)

	apt := confirmation.Appointment
	require.NotNil(t, apt)
	assert.Equal(t, model.AppointmentStatusScheduled, apt.Status)
	assert.Equal(t, "user-1", apt.PatientID)
	assert.Equal(t, "user-2", apt.DoctorID)
	assert.NotEmpty(t, apt.Conditions)
	assert.Equal(t, "I've had a headache for 3 days with some dizziness", apt.Symptoms)

	assert.Equal(t, "/dashboard/patient", confirmation.RedirectTo)
	assert.EqualValues(t, 2000, confirmation.RedirectAfterMS)

	session, err = f.svc.Get(ctx, f.patient, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StageConfirmed, session.Stage)
}

func TestConfirmBookingBeforeSlotSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Start(ctx, f.patient)
	require.NoError(t, err)

	_, err = f.svc.ConfirmBooking(ctx, f.patient, session.ID, &model.ConfirmBookingRequest{
		DoctorID: "user-2",
		Date:     "2025-05-16",
		Time:     "09:00",
	})
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestSessionIsOwnerScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, err := f.svc.Start(ctx, f.patient)
	require.NoError(t, err)

	_, err = f.svc.Get(ctx, f.doctor, session.ID)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
}

func TestUnknownSessionNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Get(context.Background(), f.patient, "checkup-missing")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
