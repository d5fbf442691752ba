// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"cinelog/config"
	"cinelog/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// validateFunc matches idtoken.Validate so tests can stub the network call.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// Verifier implements service.GoogleVerifier on top of Google's idtoken
// validator, which checks the signature against Google's published keys
// along with the audience and expiry.
type Verifier struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewVerifier creates a Google ID token verifier bound to the configured client ID.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.GoogleVerifier {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &Verifier{
		clientID: clientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken implements service.GoogleVerifier.
func (v *Verifier) VerifyIDToken(ctx context.Context, token string) (*service.GoogleUser, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil {
		v.logger.Warn("google id token rejected", slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "invalid google id token")
	}

	if err := checkIssuer(payload.Issuer); err != nil {
		return nil, err
	}

	user := &service.GoogleUser{
		Subject:       payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Picture:       claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}

	if !user.EmailVerified {
		return nil, errors.New("google account email is not verified")
	}
	if user.Email == "" {
		return nil, errors.New("google id token carries no email claim")
	}

	v.logger.Info("google id token verified",
		slog.String("subject", user.Subject),
		slog.String("email", user.Email))

	return user, nil
}

func checkIssuer(issuer string) error {
	if issuer != "https://accounts.google.com" && issuer != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", issuer)
	}

	return nil
}

func claimString(claims map[string]any, key string) string {
	s, _ := claims[key].(string)

	return s
}

func claimBool(claims map[string]any, key string) bool {
	b, _ := claims[key].(bool)

	return b
}
