// Package token issues and validates the bearer tokens callers present to
// the API. A token binds one caller address; owner and authority checks
// happen downstream against that address.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

// CallerClaims carries the caller address alongside standard JWT claims.
type CallerClaims struct {
	Address string `json:"addr"`
	jwt.RegisteredClaims
}

// Service signs and validates caller tokens with a shared HMAC key.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
}

func NewService(signingKey, issuer string, ttl time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		ttl:        ttl,
	}
}

// Generate issues a token for the given caller address.
func (s *Service) Generate(caller domain.Address) (string, error) {
	if caller.IsNil() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "caller address required")
	}
	now := time.Now()
	claims := CallerClaims{
		Address: caller.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   caller.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
}

// Validate parses a token and returns the caller address it binds.
func (s *Service) Validate(tokenString string) (domain.Address, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &CallerClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*CallerClaims)
	if !ok || !parsed.Valid {
		return "", dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	caller, err := domain.ParseAddress(claims.Address)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid caller address in token")
	}
	return caller, nil
}
