package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/pkg/logger"
)

type transportFunc func(ctx context.Context, msg *Message) (string, error)

func (f transportFunc) Deliver(ctx context.Context, msg *Message) (string, error) {
	return f(ctx, msg)
}

func TestSend_Disabled(t *testing.T) {
	mailer, err := NewMailer(&config.MailConfig{From: "no-reply@vls.test"}, logger.NewNop())
	require.NoError(t, err)

	err = mailer.Send(context.Background(), "owner@example.com", "subject", "body")

	assert.ErrorIs(t, err, ErrDisabled)
}

func TestNewMailer_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MailConfig
	}{
		{"invalid from", config.MailConfig{From: "not an address"}},
		{"unknown provider", config.MailConfig{From: "no-reply@vls.test", Provider: "carrier-pigeon"}},
		{"mailgun without key", config.MailConfig{From: "no-reply@vls.test", Provider: config.MailProviderMailgun,
			Mailgun: config.MailgunConfig{Domain: "vls.test"}}},
		{"smtp without host", config.MailConfig{From: "no-reply@vls.test", Provider: config.MailProviderSMTP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMailer(&tt.cfg, logger.NewNop())
			assert.Error(t, err)
		})
	}
}

func TestSend_PassesMessageWithDeadline(t *testing.T) {
	var got *Message
	var hasDeadline bool
	mailer := NewMailerWithTransport(transportFunc(func(ctx context.Context, msg *Message) (string, error) {
		got = msg
		_, hasDeadline = ctx.Deadline()
		return "id-1", nil
	}), "VLS <no-reply@vls.test>", time.Second, logger.NewNop())

	err := mailer.Send(context.Background(), "owner@example.com", "Dobrodošli", "Tenant ID: K7M3PQ2X")

	require.NoError(t, err)
	assert.True(t, hasDeadline)
	assert.Equal(t, &Message{
		From:    "VLS <no-reply@vls.test>",
		To:      "owner@example.com",
		Subject: "Dobrodošli",
		Body:    "Tenant ID: K7M3PQ2X",
	}, got)
}

func TestSend_InvalidRecipientNeverDelivers(t *testing.T) {
	called := false
	mailer := NewMailerWithTransport(transportFunc(func(context.Context, *Message) (string, error) {
		called = true
		return "", nil
	}), "no-reply@vls.test", time.Second, logger.NewNop())

	err := mailer.Send(context.Background(), "not an address", "subject", "body")

	assert.Error(t, err)
	assert.False(t, called)
}

func TestSend_TransportFailure(t *testing.T) {
	mailer := NewMailerWithTransport(transportFunc(func(context.Context, *Message) (string, error) {
		return "", errors.New("relay refused")
	}), "no-reply@vls.test", time.Second, logger.NewNop())

	err := mailer.Send(context.Background(), "owner@example.com", "subject", "body")

	assert.EqualError(t, err, "relay refused")
}

func TestMailgunTransport_Deliver(t *testing.T) {
	var path, to, subject, text, apiKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, apiKey, _ = r.BasicAuth()
		to, subject, text = r.FormValue("to"), r.FormValue("subject"), r.FormValue("text")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"<20250718.1@vls.test>","message":"Queued. Thank you."}`)
	}))
	defer server.Close()

	transport, err := NewMailgunTransport(config.MailgunConfig{
		Domain:  "vls.test",
		APIKey:  "key-test",
		APIBase: server.URL + "/v3",
	})
	require.NoError(t, err)

	id, err := transport.Deliver(context.Background(), &Message{
		From: "no-reply@vls.test", To: "owner@example.com", Subject: "Welcome", Body: "Tenant ID: K7M3PQ2X",
	})

	require.NoError(t, err)
	assert.Equal(t, "<20250718.1@vls.test>", id)
	assert.True(t, strings.HasSuffix(path, "/vls.test/messages"), path)
	assert.Equal(t, "key-test", apiKey)
	assert.Equal(t, "owner@example.com", to)
	assert.Equal(t, "Welcome", subject)
	assert.Equal(t, "Tenant ID: K7M3PQ2X", text)
}

func TestMailgunTransport_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Invalid private key"}`)
	}))
	defer server.Close()

	transport, err := NewMailgunTransport(config.MailgunConfig{Domain: "vls.test", APIKey: "bad", APIBase: server.URL + "/v3"})
	require.NoError(t, err)

	_, err = transport.Deliver(context.Background(), &Message{From: "no-reply@vls.test", To: "owner@example.com"})

	assert.ErrorContains(t, err, "mailgun send failed")
}

func TestBuildMessage(t *testing.T) {
	m, err := buildMessage(&Message{
		From:    "VLS <no-reply@vls.test>",
		To:      "owner@example.com",
		Subject: "Welcome",
		Body:    "line one\nline two",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "no-reply@vls.test")
	assert.Contains(t, raw, "owner@example.com")
	assert.Contains(t, raw, "Subject: Welcome")
	assert.Contains(t, raw, "text/plain")
	assert.Contains(t, raw, "line two")
}

func TestBuildMessage_InvalidSender(t *testing.T) {
	_, err := buildMessage(&Message{From: "nobody", To: "owner@example.com"})

	assert.Error(t, err)
}
