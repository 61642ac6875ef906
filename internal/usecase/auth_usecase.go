// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"adchecker/internal/domain/entity"

	"github.com/google/uuid"
)

// CallbackInput carries the query parameters of the OAuth redirect.
type CallbackInput struct {
	Code          string // Authorization code, empty when the user declined.
	Error         string // Error reported by Meta, e.g. "access_denied".
	State         string // State echoed back by Meta.
	ExpectedState string // State issued by this server at login. A missing value fails the state check.
}

// CallbackResult is the outcome of a successful OAuth exchange.
type CallbackResult struct {
	User    *entity.User
	Session *entity.SessionToken
}

// AuthUsecase drives the Meta OAuth flow.
type AuthUsecase interface {
	// LoginURL returns the Meta consent dialog URL for the given CSRF state.
	LoginURL(state string) string

	// HandleCallback exchanges the authorization code, upserts the user and its
	// credential atomically and opens a session.
	HandleCallback(ctx context.Context, input CallbackInput) (*CallbackResult, error)

	// CurrentUser returns the profile of a signed-in user.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
