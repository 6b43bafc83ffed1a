// Package auth validates the bearer tokens that identify itinerary owners.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/travelplan-backend/internal/domain"
)

// JWTManager signs and validates HS256 access tokens whose subject is the
// owner ID.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// GenerateAccessToken creates a signed token for ownerID. Used by tripctl
// and tests; production tokens come from the account service.
func (m *JWTManager) GenerateAccessToken(ownerID uuid.UUID) (string, error) {
	if ownerID == uuid.Nil {
		return "", errors.New("owner id is nil")
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   ownerID.String(),
		Issuer:    m.issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses tokenString and returns the owner it names.
// Every failure wraps domain.ErrUnauthorized.
func (m *JWTManager) ValidateToken(_ context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w: %w", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}

	ownerID, err := uuid.Parse(claims.Subject)
	if err != nil || ownerID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("invalid subject %q: %w", claims.Subject, domain.ErrUnauthorized)
	}

	return ownerID, nil
}
