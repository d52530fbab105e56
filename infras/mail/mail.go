package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

const otelScopeName = "mail"

type Email struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers transactional e-mail.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

type smtpSender struct {
	cfg  *config.Config
	otel otel.Otel
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(cfg *config.Config, otel otel.Otel) Sender {
	return &smtpSender{
		cfg:  cfg,
		otel: otel,
		send: smtp.SendMail,
	}
}

func (s *smtpSender) Send(ctx context.Context, email Email) (err error) {
	_, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(email.To) == 0 {
		return fmt.Errorf("mail has no recipients")
	}

	mailCfg := s.cfg.Mail
	if mailCfg.Host == constant.Empty {
		log.Warn().Strs("to", email.To).Str("subject", email.Subject).Msg("mail host not configured, skipping delivery")

		return nil
	}

	var auth smtp.Auth
	if mailCfg.Username != constant.Empty {
		auth = smtp.PlainAuth("", mailCfg.Username, mailCfg.Password, mailCfg.Host)
	}

	scope.SetAttribute("mail.subject", email.Subject)

	if err = s.send(net.JoinHostPort(mailCfg.Host, mailCfg.Port), auth, mailCfg.From, email.To, compose(mailCfg.From, email)); err != nil {
		log.Error().Err(err).Strs("to", email.To).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Strs("to", email.To).Str("subject", email.Subject).Msg("mail sent")

	return nil
}

func compose(from string, email Email) []byte {
	var b strings.Builder

	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(email.To, ", ") + "\r\n")
	b.WriteString("Subject: " + email.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(email.HTML)

	return []byte(b.String())
}
