// Package meta implements the authorization code flow against Facebook Login.
package meta

import (
	"context"
	"strings"
	"time"

	"adchecker/config"
	"adchecker/internal/domain/entity"
	"adchecker/internal/domain/service"
	"adchecker/internal/errors"
	"adchecker/internal/infra/graph"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

// OAuthProvider exchanges codes at the Graph token endpoint and reads the
// identity through the Graph client.
type OAuthProvider struct {
	oauthConfig *oauth2.Config
	graph       *graph.Client
}

// NewOAuthProvider builds the provider. The facebook endpoint is re-pointed at
// the configured dialog and graph hosts for the configured API version.
func NewOAuthProvider(cfg *config.Config, graphClient *graph.Client) service.OAuthProvider {
	return newOAuthProvider(cfg, graphClient)
}

func newOAuthProvider(cfg *config.Config, graphClient *graph.Client) *OAuthProvider {
	endpoint := facebook.Endpoint
	endpoint.AuthURL = strings.TrimRight(cfg.Meta.DialogURL, "/") + "/" + cfg.Meta.APIVersion + "/dialog/oauth"
	endpoint.TokenURL = strings.TrimRight(cfg.Meta.GraphURL, "/") + "/" + cfg.Meta.APIVersion + "/oauth/access_token"
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	return &OAuthProvider{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.Meta.ClientID,
			ClientSecret: cfg.Meta.ClientSecret,
			RedirectURL:  cfg.Meta.RedirectURI,
			Scopes:       cfg.Meta.Scopes,
			Endpoint:     endpoint,
		},
		graph: graphClient,
	}
}

// AuthCodeURL returns the consent dialog URL for the given state.
func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state)
}

// Exchange trades the authorization code for a user access token.
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*entity.OAuthToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.graph.HTTPClient())

	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return nil, errors.Errorf("token endpoint rejected the code: status %d", retrieveErr.Response.StatusCode)
		}

		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	result := &entity.OAuthToken{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	}
	switch {
	case token.ExpiresIn > 0:
		result.ExpiresIn = time.Duration(token.ExpiresIn) * time.Second
	case !token.Expiry.IsZero():
		result.ExpiresIn = time.Until(token.Expiry)
	}

	return result, nil
}

// FetchIdentity reads /me for the token owner.
func (p *OAuthProvider) FetchIdentity(ctx context.Context, accessToken string) (*entity.MetaIdentity, error) {
	identity, err := p.graph.FetchMe(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch identity")
	}

	return identity, nil
}
