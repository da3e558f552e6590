// Package token issues and verifies the signed session token.
//
// The token is a stateless HS256 JWT carrying the user identifier as its
// subject, valid for seven days. It is never persisted server-side; only the
// session cookie carries it between requests.
package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// All verification failures collapse to ErrInvalidToken or ErrExpiredToken;
// callers treat both as "unauthenticated" and surface no further detail.
var (
	ErrInvalidToken  = errors.New("token: invalid token")
	ErrExpiredToken  = errors.New("token: token has expired")
	ErrTokenNotFound = errors.New("token: token not found")
)

const issuer = "clothify"

// TokenService creates and validates session tokens.
// Create one instance at startup and reuse it.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

// NewTokenService creates a TokenService signing with the given secret.
// ttl is the token validity window (seven days in production use).
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	parser := jwt.NewParser(
		// Only accept HS256 - prevents algorithm confusion attacks
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithIssuer(issuer),
	)

	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		parser: parser,
	}
}

// Issue signs a session token for the given user identifier.
func (s *TokenService) Issue(ctx context.Context, userID string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("creating session token: %w", err)
	}
	return signed, nil
}

// Verify validates a session token and returns the user identifier it was
// issued for. Malformed, expired, and mis-signed tokens all fail.
func (s *TokenService) Verify(ctx context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrTokenNotFound
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := s.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", convertError(err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// convertError transforms jwt library errors into our sentinels.
func convertError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpiredToken, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: token is malformed", ErrInvalidToken)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: signature is invalid", ErrInvalidToken)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
}
