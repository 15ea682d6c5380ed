// Package workflow drives the symptom-to-booking flow. Each run is a
// server-held session moving through input → analyzing → results, then
// slot-selection → confirmed. State lives in an expiring cache with
// defined ownership: only this service reads or writes it.
package workflow

import (
	"context"
	"strings"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/internal/service/analysis"
	"github.com/jwalitptl/clinic-booking-api/internal/service/appointment"
	"github.com/jwalitptl/clinic-booking-api/internal/service/directory"
	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
	"github.com/jwalitptl/clinic-booking-api/pkg/logger"
)

const (
	// Symptom text below this trimmed length is rejected before any
	// analysis call.
	minSymptomLength = 10

	// Clients are told to sit on the confirmation view this long before
	// redirecting to the dashboard.
	redirectDelay = 2 * time.Second
)

type Service struct {
	analyzer  *analysis.Service
	directory *directory.Service
	ledger    *appointment.Service
	log       *logger.Logger

	mu       sync.Mutex
	sessions *gocache.Cache
	ttl      time.Duration
}

// NewService builds the controller. Sessions expire after ttl of
// inactivity; the sweep worker reclaims them.
func NewService(analyzer *analysis.Service, dir *directory.Service, ledger *appointment.Service,
	log *logger.Logger, ttl time.Duration) *Service {
	return &Service{
		analyzer:  analyzer,
		directory: dir,
		ledger:    ledger,
		log:       log,
		sessions:  gocache.New(ttl, 0),
		ttl:       ttl,
	}
}

// Start opens a fresh workflow session for the user.
func (s *Service) Start(ctx context.Context, user *model.User) (*model.WorkflowSession, error) {
	if user == nil {
		return nil, errors.Unauthorized("")
	}
	now := time.Now()
	session := &model.WorkflowSession{
		ID:        model.NewID("checkup"),
		UserID:    user.ID,
		Stage:     model.StageInput,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.put(session)
	return session, nil
}

// Get returns the current session snapshot.
func (s *Service) Get(ctx context.Context, user *model.User, id string) (*model.WorkflowSession, error) {
	return s.load(user, id)
}

// SubmitSymptoms validates the text, runs the analyzer, and carries the
// full result into the results stage. On analyzer failure the session
// reverts to input with the error recorded; nothing retries.
func (s *Service) SubmitSymptoms(ctx context.Context, user *model.User, id, symptoms string) (*model.WorkflowSession, error) {
	session, err := s.load(user, id)
	if err != nil {
		return nil, err
	}
	if session.Stage != model.StageInput && session.Stage != model.StageResults {
		return nil, errors.Conflict("symptoms already submitted")
	}

	if len(strings.TrimSpace(symptoms)) < minSymptomLength {
		return nil, errors.Validation("please provide more details about your symptoms (at least 10 characters)")
	}

	session.Stage = model.StageAnalyzing
	session.Symptoms = symptoms
	session.LastError = ""
	s.put(session)

	result, err := s.analyzer.Analyze(ctx, symptoms)
	if err != nil {
		session.Stage = model.StageInput
		session.LastError = "failed to analyze symptoms"
		s.put(session)
		return nil, errors.Service("failed to analyze symptoms", err)
	}

	s.resolveSpecialty(ctx, result)
	session.Stage = model.StageResults
	session.Analysis = result
	s.put(session)
	return session, nil
}

// BeginBooking moves the session into slot selection. The specialty
// comes from the analysis recommendation, or from an explicit choice
// when no analysis happened (or to override it).
func (s *Service) BeginBooking(ctx context.Context, user *model.User, id, specialtyID string) (*model.WorkflowSession, error) {
	session, err := s.load(user, id)
	if err != nil {
		return nil, err
	}
	if session.Stage == model.StageConfirmed {
		return nil, errors.Conflict("booking already confirmed")
	}

	if specialtyID == "" {
		if session.Analysis != nil && session.Analysis.RecommendedSpecialty != nil {
			specialtyID = session.Analysis.RecommendedSpecialty.ID
		}
	}
	if specialtyID == "" {
		return nil, errors.Validation("a specialty is required to start booking")
	}
	if _, err := s.directory.GetSpecialty(ctx, specialtyID); err != nil {
		return nil, err
	}

	session.SpecialtyID = specialtyID
	session.Stage = model.StageSlotSelection
	s.put(session)
	return session, nil
}

// ConfirmBooking books the chosen doctor and slot through the ledger,
// attaching the session's symptom text and condition snapshot. The
// response tells the client which dashboard to redirect to and how long
// to show the confirmation first.
func (s *Service) ConfirmBooking(ctx context.Context, user *model.User, id string, req *model.ConfirmBookingRequest) (*model.BookingConfirmation, error) {
	session, err := s.load(user, id)
	if err != nil {
		return nil, err
	}
	if session.Stage != model.StageSlotSelection {
		return nil, errors.Conflict("booking has not been started")
	}
	if req.DoctorID == "" || req.Time == "" {
		return nil, errors.Validation("please select a doctor and a time slot")
	}
	if req.Date == "" {
		return nil, errors.Validation("please select a date")
	}

	var conditions []model.Condition
	if session.Analysis != nil {
		conditions = session.Analysis.Conditions
	}

	apt, err := s.ledger.Create(ctx, user, &model.CreateAppointmentRequest{
		DoctorID:   req.DoctorID,
		Date:       req.Date,
		Time:       req.Time,
		Symptoms:   session.Symptoms,
		Conditions: conditions,
	})
	if err != nil {
		return nil, err
	}

	session.Stage = model.StageConfirmed
	session.Appointment = apt
	s.put(session)

	return &model.BookingConfirmation{
		Appointment:     apt,
		RedirectTo:      dashboardFor(user),
		RedirectAfterMS: redirectDelay.Milliseconds(),
	}, nil
}

// SweepExpired drops sessions past their TTL and reports how many were
// reclaimed.
func (s *Service) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.sessions.ItemCount()
	s.sessions.DeleteExpired()
	return before - s.sessions.ItemCount()
}

func dashboardFor(user *model.User) string {
	if user.IsDoctor() {
		return "/dashboard/doctor"
	}
	return "/dashboard/patient"
}

// resolveSpecialty fills in the recommended specialty's display fields;
// the analyzer only knows its id.
func (s *Service) resolveSpecialty(ctx context.Context, result *model.SymptomAnalysisResult) {
	if result.RecommendedSpecialty == nil {
		return
	}
	specialty, err := s.directory.GetSpecialty(ctx, result.RecommendedSpecialty.ID)
	if err != nil {
		s.log.Warn("recommended specialty missing from directory", "specialty_id", result.RecommendedSpecialty.ID)
		return
	}
	result.RecommendedSpecialty = specialty
}

func (s *Service) load(user *model.User, id string) (*model.WorkflowSession, error) {
	if user == nil {
		return nil, errors.Unauthorized("")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, errors.NotFound("workflow session")
	}
	session := v.(model.WorkflowSession)
	if session.UserID != user.ID {
		return nil, errors.Forbidden("workflow session belongs to another user")
	}
	return &session, nil
}

// put stores a value copy and refreshes the TTL.
func (s *Service) put(session *model.WorkflowSession) {
	session.UpdatedAt = time.Now()
	s.mu.Lock()
	s.sessions.Set(session.ID, *session, s.ttl)
	s.mu.Unlock()
}
