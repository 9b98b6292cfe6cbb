package config

import "time"

const (
	MailProviderMailgun = "mailgun"
	MailProviderSMTP    = "smtp"
)

type MailgunConfig struct {
	Domain  string
	APIKey  string
	APIBase string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// MailConfig selects the notification channel provider. An empty provider
// disables delivery.
type MailConfig struct {
	Provider string
	From     string
	Timeout  time.Duration
	Mailgun  MailgunConfig
	SMTP     SMTPConfig
}

func DefaultMailConfig() *MailConfig {
	return &MailConfig{
		Provider: getEnvWithDefault("MAIL_PROVIDER", ""),
		From:     getEnvWithDefault("MAIL_FROM", "Vesta Lumina <no-reply@vestalumina.com>"),
		Timeout:  getEnvDurationWithDefault("MAIL_TIMEOUT", 10*time.Second),
		Mailgun: MailgunConfig{
			Domain:  getEnvWithDefault("MAILGUN_DOMAIN", ""),
			APIKey:  getEnvWithDefault("MAILGUN_API_KEY", ""),
			APIBase: getEnvWithDefault("MAILGUN_API_BASE", ""),
		},
		SMTP: SMTPConfig{
			Host:     getEnvWithDefault("SMTP_HOST", ""),
			Port:     getEnvIntWithDefault("SMTP_PORT", 587),
			Username: getEnvWithDefault("SMTP_USERNAME", ""),
			Password: getEnvWithDefault("SMTP_PASSWORD", ""),
		},
	}
}

func (c *MailConfig) Enabled() bool {
	return c.Provider != ""
}
