package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims carried by a session token.
// The registered ID claim holds the session id and Subject the user id.
type SessionClaims struct {
	UserID uuid.UUID `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	// GenerateSessionToken signs a token for the session that expires at expiresAt.
	GenerateSessionToken(sessionID string, userID uuid.UUID, expiresAt time.Time) (string, error)

	// ValidateSessionToken verifies signature and expiry and returns the claims.
	ValidateSessionToken(tokenString string) (*SessionClaims, error)
}
