package service

import (
	"context"

	"adchecker/internal/domain/entity"
)

// AdAccountFetcher lists the ad accounts visible to an access token.
//
// An invalid or expired token is reported as domain errors.ErrUpstreamAuth;
// every other failure as domain errors.ErrUpstream.
type AdAccountFetcher interface {
	FetchAdAccounts(ctx context.Context, accessToken string) ([]entity.AdAccount, error)
}
