// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"adchecker/config"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/service"
	"adchecker/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionTokenIssuer = "adchecker"

// jwtService signs session tokens with HS256.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if strings.TrimSpace(cfg.Security.SessionSecret) == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("session secret is not configured")
	}

	return &jwtService{
		secret: []byte(cfg.Security.SessionSecret),
		now:    time.Now,
	}, nil
}

// GenerateSessionToken signs a token with jti = session id and sub = user id.
func (s *jwtService) GenerateSessionToken(sessionID string, userID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := service.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID.String(),
			Issuer:    sessionTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// ValidateSessionToken checks the signature, algorithm, issuer and expiry.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionTokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}
	if !token.Valid || claims.ID == "" || claims.UserID == uuid.Nil {
		return nil, errors.New("invalid session token claims")
	}

	return claims, nil
}
