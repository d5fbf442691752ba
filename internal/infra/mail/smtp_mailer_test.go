package mail

import (
	"context"
	"net/smtp"
	"testing"

	"cinelog/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mailerConfig() *config.Config {
	return &config.Config{
		SMTP: &config.SMTPConfig{
			Host:     "smtp.example.com",
			Port:     587,
			Username: "mailer",
			Password: "secret",
			From:     "noreply@cinelog.example.com",
		},
	}
}

func TestSMTPMailer_SendOTP(t *testing.T) {
	mailer, err := NewSMTPMailer(mailerConfig())
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	impl := mailer.(*smtpMailer)
	impl.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg

		return nil
	}

	err = mailer.SendOTP(context.Background(), "viewer@example.com", "123456", "activation")
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@cinelog.example.com", gotFrom)
	assert.Equal(t, []string{"viewer@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "123456")
	assert.Contains(t, string(gotMsg), "Subject: Your activation code")
}

func TestSMTPMailer_SendFailure(t *testing.T) {
	mailer, err := NewSMTPMailer(mailerConfig())
	require.NoError(t, err)

	impl := mailer.(*smtpMailer)
	impl.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err = mailer.SendOTP(context.Background(), "viewer@example.com", "123456", "password reset")
	assert.ErrorContains(t, err, "failed to send password reset mail")
}

func TestSMTPMailer_RequiresHostAndSender(t *testing.T) {
	_, err := NewSMTPMailer(&config.Config{})
	assert.ErrorContains(t, err, "smtp host")

	cfg := mailerConfig()
	cfg.SMTP.From = ""
	_, err = NewSMTPMailer(cfg)
	assert.ErrorContains(t, err, "sender address")
}
