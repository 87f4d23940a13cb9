// Package auth mints and verifies the bearer credentials gating the
// portfolio persistence routes. Tokens are fernet-sealed so the subject
// cannot be tampered with client-side; the dashboard core only consumes
// present-and-valid versus absent.
package auth

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
)

// TokenService seals and unseals session tokens with a fernet key.
type TokenService struct {
	key *fernet.Key
	ttl time.Duration
}

// NewTokenService parses the base64 fernet key and returns a TokenService.
// When encoded is empty a fresh key is generated, which is fine for a
// single-process session but invalidates tokens across restarts.
func NewTokenService(encoded string, ttl time.Duration) (*TokenService, error) {
	if encoded == "" {
		key := &fernet.Key{}
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate fernet key: %w", err)
		}
		return &TokenService{key: key, ttl: ttl}, nil
	}

	key, err := fernet.DecodeKey(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}
	return &TokenService{key: key, ttl: ttl}, nil
}

// Mint seals the subject into a bearer token.
func (t *TokenService) Mint(subject string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(subject), t.key)
	if err != nil {
		return "", fmt.Errorf("failed to seal token: %w", err)
	}
	return string(token), nil
}

// Verify unseals a bearer token and returns its subject. Expired or
// tampered tokens return ok=false.
func (t *TokenService) Verify(token string) (subject string, ok bool) {
	payload := fernet.VerifyAndDecrypt([]byte(token), t.ttl, []*fernet.Key{t.key})
	if payload == nil {
		return "", false
	}
	return string(payload), true
}
