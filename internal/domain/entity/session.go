package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionLifetime is the absolute lifetime of a browser session.
const SessionLifetime = 24 * time.Hour

// Session binds a browser to an internal user id for a fixed period.
type Session struct {
	ID        string    // ULID, also carried as the jti of the session token.
	UserID    uuid.UUID // The signed-in user.
	ExpiresAt time.Time // CreatedAt + SessionLifetime. Never extended.
	CreatedAt time.Time
}

// IsExpired reports whether the session has reached its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionToken is the signed value handed to the browser.
type SessionToken struct {
	Value     string
	ExpiresAt time.Time
}
