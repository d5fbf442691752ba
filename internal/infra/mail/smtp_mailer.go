// Package mail delivers transactional email over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"cinelog/config"
	"cinelog/internal/domain/service"

	"github.com/pkg/errors"
)

// sendFunc matches smtp.SendMail so tests can stub the network call.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// smtpMailer implements service.Mailer over a plain SMTP relay with
// PLAIN auth.
type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
	send sendFunc
}

// NewSMTPMailer builds a mailer from configuration.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}
	if cfg.SMTP.From == "" {
		return nil, errors.New("smtp sender address must be provided")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		auth: auth,
		from: cfg.SMTP.From,
		send: smtp.SendMail,
	}, nil
}

// SendOTP mails a verification code to the given address.
func (m *smtpMailer) SendOTP(ctx context.Context, to, code, purpose string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context cancelled before sending mail")
	}

	subject := fmt.Sprintf("Your %s code", purpose)
	body := fmt.Sprintf("Your %s verification code is %s. It expires in a few minutes.", purpose, code)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	if err := m.send(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrapf(err, "failed to send %s mail to %s", purpose, to)
	}

	return nil
}
