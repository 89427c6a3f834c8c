package email

import (
	"time"

	"github.com/dennoAiden/swiper-venture/internal/config"
)

// Config contains email service configuration
type Config struct {
	Enabled       bool
	MailgunDomain string
	MailgunAPIKey string
	FromEmail     string
	FromName      string
	SendTimeout   time.Duration
}

// NewConfig creates email configuration from the app config
func NewConfig(cfg *config.Config) *Config {
	return &Config{
		Enabled:       cfg.Email.Enabled,
		MailgunDomain: cfg.Email.MailgunDomain,
		MailgunAPIKey: cfg.Email.MailgunAPIKey,
		FromEmail:     cfg.Email.FromEmail,
		FromName:      cfg.Email.FromName,
		SendTimeout:   cfg.Email.SendTimeout,
	}
}

// IsConfigured returns true if Mailgun is configured
func (c *Config) IsConfigured() bool {
	return c.MailgunDomain != "" && c.MailgunAPIKey != ""
}
