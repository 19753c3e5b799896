package cmd

import (
	"fmt"
	"os"

	"github.com/spandanakunder/portfolio/internal/config"
	"github.com/spandanakunder/portfolio/internal/contact"
	"github.com/spandanakunder/portfolio/internal/content"
	"github.com/spandanakunder/portfolio/internal/logger"
)

func newLogger(cfg *config.Config) (logger.Logger, error) {
	return logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})
}

func loadProfile(cfg *config.Config) (*content.Profile, error) {
	p, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return p, nil
}

func newRelay(cfg *config.Config, log logger.Logger) contact.Relay {
	if cfg.Contact.Relay == config.RelaySMTP {
		return contact.NewSMTPRelay(contact.SMTPConfig{
			Host: cfg.Contact.SMTPHost,
			Port: cfg.Contact.SMTPPort,
			User: cfg.Contact.SMTPUser,
			Pass: cfg.Contact.SMTPPass,
			To:   cfg.Contact.To,
		}, log)
	}
	return contact.NewLogRelay(log)
}
