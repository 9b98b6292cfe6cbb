package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/pkg/logger"
)

var ErrDisabled = errors.New("mail delivery is not configured")

// Message is a plain-text email ready for a Transport.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// Transport hands a message to a delivery provider and returns the
// provider's message id when it issues one.
type Transport interface {
	Deliver(ctx context.Context, msg *Message) (id string, err error)
}

// Mailer validates addresses, bounds each delivery and logs the outcome.
type Mailer struct {
	transport Transport
	from      string
	timeout   time.Duration
	logger    *logger.Logger
}

// NewMailer builds the Mailer for the configured provider. A disabled config
// yields a Mailer whose Send returns ErrDisabled.
func NewMailer(cfg *config.MailConfig, logger *logger.Logger) (*Mailer, error) {
	if err := gomail.NewMsg().From(cfg.From); err != nil {
		return nil, fmt.Errorf("invalid MAIL_FROM address: %w", err)
	}

	var transport Transport
	switch cfg.Provider {
	case "":
	case config.MailProviderMailgun:
		t, err := NewMailgunTransport(cfg.Mailgun)
		if err != nil {
			return nil, err
		}
		transport = t
	case config.MailProviderSMTP:
		t, err := NewSMTPTransport(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		transport = t
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.Provider)
	}

	return NewMailerWithTransport(transport, cfg.From, cfg.Timeout, logger), nil
}

func NewMailerWithTransport(transport Transport, from string, timeout time.Duration, logger *logger.Logger) *Mailer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Mailer{transport: transport, from: from, timeout: timeout, logger: logger}
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if m.transport == nil {
		return ErrDisabled
	}
	if err := gomail.NewMsg().To(to); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	id, err := m.transport.Deliver(ctx, &Message{From: m.from, To: to, Subject: subject, Body: body})
	if err != nil {
		return err
	}
	m.logger.Info("Email sent", zap.String("to", to), zap.String("subject", subject), zap.String("message_id", id))
	return nil
}
