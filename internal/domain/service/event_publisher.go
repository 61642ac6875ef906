package service

import (
	"context"
	"time"
)

// Event types published on the account activity topic.
const (
	EventUserConnected       = "user.connected"
	EventAdAccountsRefreshed = "ad_accounts.refreshed"
)

// Triggers of an account refresh.
const (
	RefreshTriggerRead = "read"
	RefreshTriggerSync = "sync"
)

// AccountEvent describes user-visible account activity.
type AccountEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	Type         string    `json:"type"`
	UserID       string    `json:"user_id"`
	MetaUserID   string    `json:"meta_user_id,omitempty"`
	Trigger      string    `json:"trigger,omitempty"`
	AccountCount int       `json:"account_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAccountEvent publishes an account activity event.
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
