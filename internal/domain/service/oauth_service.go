package service

import (
	"context"
)

// GoogleUser represents the identity asserted by a verified Google ID token.
type GoogleUser struct {
	Subject       string // Google's stable account id (the 'sub' claim).
	Email         string
	Name          string
	Picture       string // URL to the profile picture.
	EmailVerified bool
}

// GoogleVerifier verifies Google Sign-In ID tokens sent by clients and
// extracts the asserted identity. Verification checks the signature,
// audience, issuer and expiry.
type GoogleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleUser, error)
}
