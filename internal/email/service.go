package email

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/jwalitptl/clinic-booking-api/internal/model"
	"github.com/jwalitptl/clinic-booking-api/pkg/logger"
)

// Service delivers booking lifecycle mail.
type Service interface {
	SendBookingConfirmation(ctx context.Context, user *model.User, apt *model.Appointment) error
	SendCancellation(ctx context.Context, user *model.User, apt *model.Appointment) error
}

// Config holds SMTP settings. An empty Host switches the service into
// log-only mode, which is how the demo runs.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type service struct {
	cfg Config
	log *logger.Logger
}

func NewService(cfg Config, log *logger.Logger) Service {
	return &service{cfg: cfg, log: log}
}

func (s *service) SendBookingConfirmation(ctx context.Context, user *model.User, apt *model.Appointment) error {
	subject := "Your appointment is booked"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment on %s at %s is confirmed.\nAppointment reference: %s\n",
		user.Name, apt.Date, apt.Time, apt.ID,
	)
	return s.send(user.Email, subject, body)
}

func (s *service) SendCancellation(ctx context.Context, user *model.User, apt *model.Appointment) error {
	subject := "Your appointment was cancelled"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment on %s at %s has been cancelled.\nAppointment reference: %s\n",
		user.Name, apt.Date, apt.Time, apt.ID,
	)
	return s.send(user.Email, subject, body)
}

func (s *service) send(to, subject, body string) error {
	if s.cfg.Host == "" {
		s.log.Info("email suppressed (no SMTP configured)", "to", to, "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
