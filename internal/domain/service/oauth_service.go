package service

import (
	"context"

	"adchecker/internal/domain/entity"
)

// OAuthProvider drives the authorization code flow against the Meta platform.
type OAuthProvider interface {
	// AuthCodeURL returns the consent dialog URL carrying the given CSRF state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for an access token.
	Exchange(ctx context.Context, code string) (*entity.OAuthToken, error)

	// FetchIdentity returns the profile of the token's owner.
	FetchIdentity(ctx context.Context, accessToken string) (*entity.MetaIdentity, error)
}
