package token

import (
	"context"
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestIssueAndVerify(t *testing.T) {
	srv := NewTokenService(testSecret, 7*24*time.Hour)

	tok, err := srv.Issue(context.Background(), "user-123")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if tok == "" {
		t.Fatal("expected non-empty token")
	}

	subject, err := srv.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", subject)
	}
}

func TestVerifyFailures(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		srv := NewTokenService(testSecret, time.Hour)
		_, err := srv.Verify(context.Background(), "")
		if !errors.Is(err, ErrTokenNotFound) {
			t.Fatalf("expected ErrTokenNotFound, got %v", err)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		srv := NewTokenService(testSecret, time.Hour)
		_, err := srv.Verify(context.Background(), "not-a-jwt")
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		issuing := NewTokenService(testSecret, time.Hour)
		tok, err := issuing.Issue(context.Background(), "user-123")
		if err != nil {
			t.Fatalf("Issue returned error: %v", err)
		}

		verifying := NewTokenService("another-secret", time.Hour)
		_, err = verifying.Verify(context.Background(), tok)
		if !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		srv := NewTokenService(testSecret, -time.Minute)
		tok, err := srv.Issue(context.Background(), "user-123")
		if err != nil {
			t.Fatalf("Issue returned error: %v", err)
		}

		_, err = srv.Verify(context.Background(), tok)
		if !errors.Is(err, ErrExpiredToken) {
			t.Fatalf("expected ErrExpiredToken, got %v", err)
		}
	})
}
