package auth

import (
	"testing"
	"time"

	"github.com/fernet/fernet-go"
)

func TestTokenService(t *testing.T) {
	t.Run("mint and verify round-trip the subject", func(t *testing.T) {
		svc, err := NewTokenService("", time.Hour)
		if err != nil {
			t.Fatalf("NewTokenService failed: %v", err)
		}

		token, err := svc.Mint("alice")
		if err != nil {
			t.Fatalf("Mint failed: %v", err)
		}

		subject, ok := svc.Verify(token)
		if !ok {
			t.Fatal("Expected token to verify")
		}
		if subject != "alice" {
			t.Errorf("Expected subject %q, got %q", "alice", subject)
		}
	})

	t.Run("tampered token fails verification", func(t *testing.T) {
		svc, _ := NewTokenService("", time.Hour)

		token, _ := svc.Mint("alice")

		if _, ok := svc.Verify(token + "x"); ok {
			t.Error("Expected tampered token to fail")
		}
	})

	t.Run("token minted with another key fails verification", func(t *testing.T) {
		svcA, _ := NewTokenService("", time.Hour)
		svcB, _ := NewTokenService("", time.Hour)

		token, _ := svcA.Mint("alice")

		if _, ok := svcB.Verify(token); ok {
			t.Error("Expected token from another key to fail")
		}
	})

	t.Run("shared encoded key verifies across instances", func(t *testing.T) {
		key := &fernet.Key{}
		if err := key.Generate(); err != nil {
			t.Fatalf("key generation failed: %v", err)
		}
		encoded := key.Encode()

		minter, err := NewTokenService(encoded, time.Hour)
		if err != nil {
			t.Fatalf("NewTokenService failed: %v", err)
		}
		verifier, err := NewTokenService(encoded, time.Hour)
		if err != nil {
			t.Fatalf("NewTokenService failed: %v", err)
		}

		token, _ := minter.Mint("bob")
		if subject, ok := verifier.Verify(token); !ok || subject != "bob" {
			t.Errorf("Expected shared-key verification, got %q/%v", subject, ok)
		}
	})

	t.Run("garbage key is rejected", func(t *testing.T) {
		if _, err := NewTokenService("not-a-key", time.Hour); err == nil {
			t.Error("Expected error for malformed key")
		}
	})
}
