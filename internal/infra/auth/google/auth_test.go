package google

import (
	"context"
	"log/slog"
	"testing"

	"cinelog/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestVerifier(validate validateFunc) *Verifier {
	cfg := &config.Config{
		GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"},
	}

	v := NewVerifier(cfg, slog.Default()).(*Verifier)
	v.validate = validate

	return v
}

func TestVerifier_VerifyIDToken(t *testing.T) {
	verifier := newTestVerifier(func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", token)
		assert.Equal(t, "test_client_id", audience)

		return &idtoken.Payload{
			Issuer:  "https://accounts.google.com",
			Subject: "google-subject-123",
			Claims: map[string]any{
				"email":          "viewer@example.com",
				"email_verified": true,
				"name":           "Viewer Example",
				"picture":        "https://lh3.googleusercontent.com/photo.jpg",
			},
		}, nil
	})

	user, err := verifier.VerifyIDToken(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "google-subject-123", user.Subject)
	assert.Equal(t, "viewer@example.com", user.Email)
	assert.Equal(t, "Viewer Example", user.Name)
	assert.True(t, user.EmailVerified)
}

func TestVerifier_RejectsInvalidToken(t *testing.T) {
	verifier := newTestVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("signature mismatch")
	})

	user, err := verifier.VerifyIDToken(context.Background(), "forged")
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "invalid google id token")
}

func TestVerifier_RejectsWrongIssuer(t *testing.T) {
	verifier := newTestVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Issuer:  "https://evil.example.com",
			Subject: "google-subject-123",
			Claims:  map[string]any{"email": "viewer@example.com", "email_verified": true},
		}, nil
	})

	user, err := verifier.VerifyIDToken(context.Background(), "raw-token")
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "invalid issuer")
}

func TestVerifier_RejectsUnverifiedEmail(t *testing.T) {
	verifier := newTestVerifier(func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Issuer:  "accounts.google.com",
			Subject: "google-subject-123",
			Claims:  map[string]any{"email": "viewer@example.com", "email_verified": false},
		}, nil
	})

	user, err := verifier.VerifyIDToken(context.Background(), "raw-token")
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "not verified")
}
