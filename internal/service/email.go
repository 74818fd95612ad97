package service

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"volunteerhub-backend/internal/config"
	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailService{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (s *emailService) SendEventDecision(to string, event *domain.Event, app *domain.EventApplication) {
	subject := fmt.Sprintf("Your application for %s was %s", event.Title, strings.ToLower(string(app.Status)))
	body := fmt.Sprintf("Hello,\n\nYour application for the event '%s' (%s) has been %s.",
		event.Title, event.StartAt.Format("2006-01-02 15:04"), strings.ToLower(string(app.Status)))
	if app.DecisionNote != "" {
		body += fmt.Sprintf("\n\nNote from the organizer: %s", app.DecisionNote)
	}
	body += "\n\nBest regards,\nThe VolunteerHub Team"
	s.send(to, subject, body)
}

func (s *emailService) SendStaffDecision(to string, org *domain.Organization, app *domain.StaffApplication) {
	subject := fmt.Sprintf("Your staff application to %s was %s", org.Name, strings.ToLower(string(app.Status)))
	body := fmt.Sprintf("Hello,\n\nYour application to join the staff of '%s' has been %s.",
		org.Name, strings.ToLower(string(app.Status)))
	if app.DecisionNote != "" {
		body += fmt.Sprintf("\n\nNote: %s", app.DecisionNote)
	}
	body += "\n\nBest regards,\nThe VolunteerHub Team"
	s.send(to, subject, body)
}

// send is fire-and-forget: a notification failure must never fail the
// decision that triggered it.
func (s *emailService) send(to, subject, body string) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	go func() {
		if err := d.DialAndSend(m); err != nil {
			logger.Error("failed to send notification email", "to", to, "subject", subject, "error", err)
		}
	}()
}
