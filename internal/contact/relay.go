package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/google/uuid"

	"github.com/spandanakunder/portfolio/internal/logger"
)

// LogRelay reports submissions to the log and nothing else.
type LogRelay struct {
	log logger.Logger
}

// NewLogRelay returns a relay writing to log.
func NewLogRelay(log logger.Logger) *LogRelay {
	return &LogRelay{log: log}
}

// Deliver implements Relay.
func (r *LogRelay) Deliver(ctx context.Context, id uuid.UUID, s Submission) error {
	r.log.Info(ctx, "contact form submitted",
		logger.String("submission_id", id.String()),
		logger.String("name", s.Name),
		logger.String("email", s.Email),
		logger.Int("message_length", len(s.Message)),
	)
	return nil
}

// SMTPConfig configures an SMTPRelay.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPRelay mails submissions to the site owner.
type SMTPRelay struct {
	cfg  SMTPConfig
	log  logger.Logger
	send sendFunc
}

// NewSMTPRelay returns a relay sending through cfg.
func NewSMTPRelay(cfg SMTPConfig, log logger.Logger) *SMTPRelay {
	return &SMTPRelay{cfg: cfg, log: log, send: smtp.SendMail}
}

// Deliver implements Relay.
func (r *SMTPRelay) Deliver(ctx context.Context, id uuid.UUID, s Submission) error {
	if r.cfg.User == "" || r.cfg.Pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", r.cfg.User, r.cfg.Pass, r.cfg.Host)
	msg := composeMessage(r.cfg.User, r.cfg.To, id, s)

	if err := r.send(r.cfg.Host+":"+r.cfg.Port, auth, r.cfg.User, []string{r.cfg.To}, msg); err != nil {
		r.log.Error(ctx, "sending contact email", logger.Error(err), logger.String("submission_id", id.String()))
		return err
	}

	r.log.Info(ctx, "contact email sent", logger.String("submission_id", id.String()), logger.String("email", s.Email))
	return nil
}

func composeMessage(from, to string, id uuid.UUID, s Submission) []byte {
	name := headerSafe(s.Name)
	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Submission %s
`, s.Name, s.Email, s.Message, id)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe(s.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe keeps user input from starting a new header line.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
