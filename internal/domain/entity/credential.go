package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential is an encrypted Meta access token held for a user.
// Only the newest credential of a user is ever read.
type Credential struct {
	ID             uuid.UUID  // The unique ID for this credential row.
	UserID         uuid.UUID  // Owner of the token.
	EncryptedToken string     // Ciphertext produced by the token cipher. Never the plaintext token.
	TokenType      string     // Token type reported by Meta, usually "bearer".
	ExpiresAt      *time.Time // Absolute expiry when Meta reported a lifetime, nil otherwise.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OAuthToken is the result of exchanging an authorization code.
type OAuthToken struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration // Zero when the provider reported no lifetime.
}
