package service

import "context"

// Mailer delivers transactional mail. The only messages this system
// sends are one-time verification codes.
type Mailer interface {
	// SendOTP mails a verification code to the given address. The purpose
	// string ("activation" or "password reset") is used in the subject line.
	SendOTP(ctx context.Context, to, code, purpose string) error
}
