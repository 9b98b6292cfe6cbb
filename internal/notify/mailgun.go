package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/vestalumina/vls-api/internal/config"
)

// MailgunTransport delivers through the Mailgun messages API.
type MailgunTransport struct {
	mg *mailgun.MailgunImpl
}

func NewMailgunTransport(cfg config.MailgunConfig) (*MailgunTransport, error) {
	if cfg.Domain == "" || cfg.APIKey == "" {
		return nil, errors.New("MAILGUN_DOMAIN and MAILGUN_API_KEY are required")
	}
	mg := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		mg.SetAPIBase(cfg.APIBase)
	}
	return &MailgunTransport{mg: mg}, nil
}

func (t *MailgunTransport) Deliver(ctx context.Context, msg *Message) (string, error) {
	message := t.mg.NewMessage(msg.From, msg.Subject, msg.Body, msg.To)
	_, id, err := t.mg.Send(ctx, message)
	if err != nil {
		return "", fmt.Errorf("mailgun send failed: %w", err)
	}
	return id, nil
}
