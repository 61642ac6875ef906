package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AccountCacheTTL is how long a cached account list is served without refetching.
const AccountCacheTTL = 5 * time.Minute

// AccountListPayload is the document stored in a cache row and returned to clients.
type AccountListPayload struct {
	Accounts []AdAccount `json:"accounts"`
}

// CachedAccountList is one snapshot of a user's account list.
// Several snapshots may exist for a user; readers take the newest.
type CachedAccountList struct {
	ID       uuid.UUID       // The unique ID for this snapshot.
	UserID   uuid.UUID       // Owner of the snapshot.
	Payload  json.RawMessage // Opaque JSON document, always of the AccountListPayload shape.
	CachedAt time.Time       // Capture time of the snapshot.
}

// IsFresh reports whether the snapshot is younger than AccountCacheTTL at now.
func (c *CachedAccountList) IsFresh(now time.Time) bool {
	return now.Sub(c.CachedAt) < AccountCacheTTL
}

// Accounts decodes the stored payload.
func (c *CachedAccountList) Accounts() ([]AdAccount, error) {
	var payload AccountListPayload
	if err := json.Unmarshal(c.Payload, &payload); err != nil {
		return nil, err //nolint:wrapcheck // caller decides how to classify a corrupt snapshot
	}
	if payload.Accounts == nil {
		payload.Accounts = []AdAccount{}
	}

	return payload.Accounts, nil
}

// NewAccountListPayload encodes accounts into the cached document shape.
func NewAccountListPayload(accounts []AdAccount) (json.RawMessage, error) {
	if accounts == nil {
		accounts = []AdAccount{}
	}

	return json.Marshal(AccountListPayload{Accounts: accounts}) //nolint:wrapcheck // plain struct, cannot fail in practice
}
