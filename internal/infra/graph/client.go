// Package graph is a minimal client for the Meta Graph API endpoints the
// dashboard reads: the token owner's profile and its ad accounts.
package graph

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"adchecker/config"
	deliverycontext "adchecker/internal/delivery/context"
	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/service"
	"adchecker/internal/errors"
)

const (
	adAccountFields = "id,name,account_status,currency,timezone_name,business,spend_cap,amount_spent,balance,owner,funding_source,business_name,account_id"
	identityFields  = "id,name,email"
	pageLimit       = "100"

	// invalidTokenCode is the Graph error code for expired, revoked or malformed tokens.
	invalidTokenCode = 190

	endpointAdAccounts = "me/adaccounts"
	endpointMe         = "me"

	outcomeAuthError = "auth_error"

	maxBodyBytes = 16 << 20
)

// Client calls the Graph API with a user access token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    service.MetricsRecorder
	logger     *slog.Logger
}

// NewClient builds a client for {graphURL}/{apiVersion}.
func NewClient(cfg *config.Config, metrics service.MetricsRecorder, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Meta.Timeout},
		baseURL:    strings.TrimRight(cfg.Meta.GraphURL, "/") + "/" + cfg.Meta.APIVersion,
		metrics:    metrics,
		logger:     logger,
	}
}

// NewAdAccountFetcher exposes the client as the domain's fetcher.
func NewAdAccountFetcher(client *Client) service.AdAccountFetcher {
	return client
}

// HTTPClient returns the underlying HTTP client so the OAuth exchange shares its timeout.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// APIError is the "error" object of a Graph error response.
type APIError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode"`
	FBTraceID    string `json:"fbtrace_id"`
	StatusCode   int    `json:"-"`
}

func (e *APIError) Error() string {
	return "graph api error " + strconv.Itoa(e.Code) + " (" + e.Type + "): " + e.Message
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

type adAccountsResponse struct {
	Data   []rawAdAccount `json:"data"`
	Paging *struct {
		Next string `json:"next"`
	} `json:"paging"`
}

type rawAdAccount struct {
	ID            string       `json:"id"`
	AccountID     *graphString `json:"account_id"`
	Name          *string      `json:"name"`
	AccountStatus *int         `json:"account_status"`
	Currency      *string      `json:"currency"`
	TimezoneName  *string      `json:"timezone_name"`
	Business      *business    `json:"business"`
	SpendCap      *graphString `json:"spend_cap"`
	AmountSpent   *graphString `json:"amount_spent"`
	Balance       *graphString `json:"balance"`
	Owner         *graphString `json:"owner"`
	FundingSource *graphString `json:"funding_source"`
	BusinessName  *string      `json:"business_name"`
}

type business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rawIdentity struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// FetchAdAccounts returns the first page (up to 100) of the token owner's ad accounts.
func (c *Client) FetchAdAccounts(ctx context.Context, accessToken string) ([]entity.AdAccount, error) {
	query := url.Values{}
	query.Set("fields", adAccountFields)
	query.Set("limit", pageLimit)

	var resp adAccountsResponse
	if err := c.get(ctx, endpointAdAccounts, accessToken, query, &resp); err != nil {
		return nil, err
	}

	if resp.Paging != nil && resp.Paging.Next != "" {
		c.log(ctx).Debug("Ad account list truncated to first page", slog.Int("count", len(resp.Data)))
	}

	accounts := make([]entity.AdAccount, 0, len(resp.Data))
	for i := range resp.Data {
		accounts = append(accounts, resp.Data[i].normalize())
	}

	return accounts, nil
}

// FetchMe returns the token owner's id, name and email.
func (c *Client) FetchMe(ctx context.Context, accessToken string) (*entity.MetaIdentity, error) {
	query := url.Values{}
	query.Set("fields", identityFields)

	var raw rawIdentity
	if err := c.get(ctx, endpointMe, accessToken, query, &raw); err != nil {
		return nil, err
	}

	return &entity.MetaIdentity{
		ID:    raw.ID,
		Name:  deref(raw.Name),
		Email: deref(raw.Email),
	}, nil
}

// get issues one GET and classifies every failure as ErrUpstreamAuth or ErrUpstream.
func (c *Client) get(ctx context.Context, endpoint, accessToken string, query url.Values, out any) error {
	query.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return domainerrors.ErrUpstream.WithCause(errors.Wrap(err, "failed to build graph request"))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstreamCall(endpoint, service.OutcomeFailure, time.Since(start))

		return domainerrors.ErrUpstream.WithCause(redactURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.metrics.ObserveUpstreamCall(endpoint, service.OutcomeFailure, time.Since(start))

		return domainerrors.ErrUpstream.WithCause(errors.Wrap(err, "failed to read graph response"))
	}

	// Graph can report errors with a 2xx status, so the envelope is checked on every response.
	if apiErr := decodeAPIError(resp.StatusCode, body); apiErr != nil {
		return c.classify(ctx, endpoint, apiErr, start)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.metrics.ObserveUpstreamCall(endpoint, service.OutcomeFailure, time.Since(start))

		return domainerrors.ErrUpstream.WithCause(errors.Wrap(err, "failed to decode graph response"))
	}

	c.metrics.ObserveUpstreamCall(endpoint, service.OutcomeSuccess, time.Since(start))

	return nil
}

// classify maps code 190 to ErrUpstreamAuth and every other Graph error to ErrUpstream.
func (c *Client) classify(ctx context.Context, endpoint string, apiErr *APIError, start time.Time) error {
	if apiErr.Code == invalidTokenCode {
		c.metrics.ObserveUpstreamCall(endpoint, outcomeAuthError, time.Since(start))

		return domainerrors.ErrUpstreamAuth.WithCause(apiErr)
	}
	c.metrics.ObserveUpstreamCall(endpoint, service.OutcomeFailure, time.Since(start))
	c.log(ctx).Warn("Graph API call failed",
		slog.String("endpoint", endpoint),
		slog.Int("status", apiErr.StatusCode),
		slog.Int("code", apiErr.Code),
		slog.String("fbtrace_id", apiErr.FBTraceID),
	)

	return domainerrors.ErrUpstream.WithCause(apiErr)
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// decodeAPIError returns the body's "error" object, or nil for a successful
// response without one. Failed responses that are not Graph errors still
// yield an APIError carrying the HTTP status.
func decodeAPIError(status int, body []byte) *APIError {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == nil {
		if isSuccess(status) {
			return nil
		}

		return &APIError{Message: http.StatusText(status), StatusCode: status}
	}
	envelope.Error.StatusCode = status

	return envelope.Error
}

// redactURLError drops the request URL, which carries the access token.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return errors.Wrap(urlErr.Err, "graph request failed")
	}

	return errors.Wrap(err, "graph request failed")
}

func (raw *rawAdAccount) normalize() entity.AdAccount {
	status := entity.UnknownAccountStatus
	if raw.AccountStatus != nil {
		status = entity.AccountStatusLabel(*raw.AccountStatus)
	}

	role := entity.DirectAccessRole
	if raw.Business != nil && raw.Business.Name != "" {
		role = raw.Business.Name
	}

	return entity.AdAccount{
		ID:            raw.ID,
		AccountID:     raw.AccountID.value(),
		Name:          deref(raw.Name),
		Status:        status,
		Currency:      deref(raw.Currency),
		Timezone:      deref(raw.TimezoneName),
		Role:          role,
		SpendCap:      raw.SpendCap.value(),
		AmountSpent:   raw.AmountSpent.value(),
		Balance:       raw.Balance.value(),
		Owner:         raw.Owner.value(),
		FundingSource: raw.FundingSource.value(),
		BusinessName:  deref(raw.BusinessName),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
