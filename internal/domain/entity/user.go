// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the internal identity of a person who connected a Meta account.
// A user row is created on the first successful OAuth exchange and refreshed on every later one.
type User struct {
	ID         uuid.UUID // Internal identifier, opaque and stable.
	MetaUserID string    // The user's id on the Meta platform. Unique across users.
	Name       string    // Display name reported by Meta at the last exchange.
	Email      string    // Email reported by Meta at the last exchange. May be empty.
	CreatedAt  time.Time // Timestamp of the first successful exchange.
	UpdatedAt  time.Time // Timestamp of the last profile refresh.
}

// MetaIdentity is the profile returned by the Meta identity endpoint.
type MetaIdentity struct {
	ID    string
	Name  string
	Email string
}
