package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmtpSender_Send(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mail.Host = "smtp.example.com"
	cfg.Mail.Port = "587"
	cfg.Mail.From = "frontdesk@example.com"

	var gotAddr string
	var gotMsg []byte

	sender := &smtpSender{
		cfg:  cfg,
		otel: mocks.NewOtel(),
		send: func(addr string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
			gotAddr = addr
			gotMsg = msg

			return nil
		},
	}

	err := sender.Send(context.Background(), Email{To: []string{"guest@example.com"}, Subject: "Your invoice", HTML: "<p>Thanks</p>"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.True(t, strings.Contains(string(gotMsg), "Subject: Your invoice\r\n"))
	assert.True(t, strings.HasSuffix(string(gotMsg), "<p>Thanks</p>"))
}

func TestSmtpSender_SendErrors(t *testing.T) {
	cfg := &config.Config{}
	cfg.Mail.Host = "smtp.example.com"
	cfg.Mail.Port = "25"

	sender := &smtpSender{
		cfg:  cfg,
		otel: mocks.NewOtel(),
		send: func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		},
	}

	assert.Error(t, sender.Send(context.Background(), Email{Subject: "no recipients"}))
	assert.Error(t, sender.Send(context.Background(), Email{To: []string{"guest@example.com"}}))
}

func TestSmtpSender_SkipsWithoutHost(t *testing.T) {
	sender := &smtpSender{
		cfg:  &config.Config{},
		otel: mocks.NewOtel(),
		send: func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("send must not be called")

			return nil
		},
	}

	assert.NoError(t, sender.Send(context.Background(), Email{To: []string{"guest@example.com"}}))
}
