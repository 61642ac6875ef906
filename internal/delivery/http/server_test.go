package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"adchecker/config"
	httpmiddleware "adchecker/internal/delivery/http/middleware"
	"adchecker/internal/delivery/http/response"
	"adchecker/internal/delivery/http/router"
	"adchecker/internal/delivery/http/router/handler"
	"adchecker/internal/delivery/middleware"
	"adchecker/internal/domain/constants"
	"adchecker/internal/domain/entity"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/errors"
	"adchecker/internal/infra/metrics"
	mockUsecase "adchecker/internal/mocks/usecase"
	"adchecker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testFrontendURL   = "https://dashboard.example.com"
	testSessionCookie = "meta-ad-checker-session"
	testStateCookie   = "oauth_state"
	testSessionToken  = "signed-session-token"
)

type serverMocks struct {
	auth     *mockUsecase.MockAuthUsecase
	sessions *mockUsecase.MockSessionUsecase
	accounts *mockUsecase.MockAdAccountUsecase
	metrics  *metrics.Metrics
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvProduction
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Frontend.URL = testFrontendURL
	cfg.Security.SessionCookieName = testSessionCookie
	cfg.Security.StateCookieName = testStateCookie

	return cfg
}

func newTestEcho(t *testing.T, cfg *config.Config) (*echo.Echo, *serverMocks) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := &serverMocks{
		auth:     mockUsecase.NewMockAuthUsecase(t),
		sessions: mockUsecase.NewMockSessionUsecase(t),
		accounts: mockUsecase.NewMockAdAccountUsecase(t),
		metrics:  metrics.New(),
	}

	e := newEcho(ServerParams{
		Cfg:               cfg,
		Logger:            logger,
		ErrorMiddleware:   httpmiddleware.NewErrorMiddleware(logger),
		MetricsMiddleware: middleware.NewMetricsMiddleware(m.metrics),
		RouterParams: router.RouterParams{
			AuthHandler:      handler.NewAuthHandler(m.auth, m.sessions, cfg, logger),
			AdAccountHandler: handler.NewAdAccountHandler(m.accounts),
			AuthMiddleware:   httpmiddleware.NewAuthMiddleware(m.sessions, cfg),
			Metrics:          m.metrics,
		},
	})

	return e, m
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func withSession(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: testSessionToken})

	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestServer_Health(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/ad-accounts", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := serve(e, req)

	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "req-42", decodeError(t, rec).RequestID)
}

func TestServer_AdAccountsRequireSession(t *testing.T) {
	t.Run("no cookie", func(t *testing.T) {
		e, _ := newTestEcho(t, newTestConfig())

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/ad-accounts", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "UNAUTHENTICATED", body.Code)
		assert.Equal(t, "Not authenticated", body.Error)
	})

	t.Run("revoked session", func(t *testing.T) {
		e, m := newTestEcho(t, newTestConfig())
		m.sessions.EXPECT().CurrentUserID(mock.Anything, testSessionToken).
			Return(uuid.Nil, domainerrors.ErrUnauthenticated.WithDetails("session revoked"))

		rec := serve(e, withSession(httptest.NewRequest(http.MethodPost, "/api/sync", nil)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Code)
	})
}

func TestServer_ListAdAccounts(t *testing.T) {
	e, m := newTestEcho(t, newTestConfig())
	userID := uuid.New()
	accounts := []entity.AdAccount{{ID: "act_1", AccountID: "1", Name: "Main", Status: "Active", Role: entity.DirectAccessRole}}

	m.sessions.EXPECT().CurrentUserID(mock.Anything, testSessionToken).Return(userID, nil)
	m.accounts.EXPECT().GetAdAccounts(mock.Anything, userID).Return(accounts, nil)

	rec := serve(e, withSession(httptest.NewRequest(http.MethodGet, "/api/ad-accounts", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body response.AccountsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, accounts, body.Accounts)
}

func TestServer_SyncAdAccounts(t *testing.T) {
	e, m := newTestEcho(t, newTestConfig())
	userID := uuid.New()

	m.sessions.EXPECT().CurrentUserID(mock.Anything, testSessionToken).Return(userID, nil)
	m.accounts.EXPECT().SyncAdAccounts(mock.Anything, userID).Return(nil, nil)

	rec := serve(e, withSession(httptest.NewRequest(http.MethodPost, "/api/sync", nil)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"accounts":[],"synced":true}`, rec.Body.String())
}

func TestServer_AdAccountErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "expired token asks for reauth",
			err:        errors.Wrap(domainerrors.ErrUpstreamAuth.WithCause(errors.New("code 190")), "fetch accounts"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "TOKEN_EXPIRED",
		},
		{
			name:       "missing credential asks for reauth",
			err:        domainerrors.ErrNoCredential,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "NO_CREDENTIAL",
		},
		{
			name:       "upstream failure",
			err:        domainerrors.ErrUpstream.WithCause(errors.New("graph internal detail")),
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPSTREAM_ERROR",
		},
		{
			name:       "database failure",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("relation does not exist"), "insert cache"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "unclassified failure",
			err:        errors.New("internal detail"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestEcho(t, newTestConfig())
			userID := uuid.New()
			m.sessions.EXPECT().CurrentUserID(mock.Anything, testSessionToken).Return(userID, nil)
			m.accounts.EXPECT().GetAdAccounts(mock.Anything, userID).Return(nil, tt.err)

			rec := serve(e, withSession(httptest.NewRequest(http.MethodGet, "/api/ad-accounts", nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			assert.NotContains(t, rec.Body.String(), "detail")
			assert.NotContains(t, rec.Body.String(), "relation")
		})
	}
}

func TestServer_Me(t *testing.T) {
	t.Run("signed in", func(t *testing.T) {
		e, m := newTestEcho(t, newTestConfig())
		user := &entity.User{ID: uuid.New(), MetaUserID: "10001", Name: "Ada", Email: "ada@example.com"}
		m.sessions.EXPECT().CurrentUserID(mock.Anything, testSessionToken).Return(user.ID, nil)
		m.auth.EXPECT().CurrentUser(mock.Anything, user.ID).Return(user, nil)

		rec := serve(e, withSession(httptest.NewRequest(http.MethodGet, "/auth/me", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"id":"`+user.ID.String()+`","meta_user_id":"10001","name":"Ada","email":"ada@example.com"}`,
			rec.Body.String())
	})

	t.Run("user row gone", func(t *testing.T) {
		e, m := newTestEcho(t, newTestConfig())
		userID := uuid.New()
		m.sessions.EXPECT().CurrentUserID(mock.Anything, testSessionToken).Return(userID, nil)
		m.auth.EXPECT().CurrentUser(mock.Anything, userID).Return(nil, domainerrors.ErrUserNotFound)

		rec := serve(e, withSession(httptest.NewRequest(http.MethodGet, "/auth/me", nil)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", decodeError(t, rec).Code)
	})

	t.Run("no session", func(t *testing.T) {
		e, _ := newTestEcho(t, newTestConfig())

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestServer_Login(t *testing.T) {
	e, m := newTestEcho(t, newTestConfig())

	var issuedState string
	m.auth.EXPECT().LoginURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string {
			issuedState = state

			return "https://www.facebook.com/v18.0/dialog/oauth?state=" + url.QueryEscape(state)
		})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.NotEmpty(t, issuedState)
	assert.Equal(t, "https://www.facebook.com/v18.0/dialog/oauth?state="+url.QueryEscape(issuedState), rec.Header().Get(echo.HeaderLocation))

	cookie := findCookie(rec, testStateCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, issuedState, cookie.Value)
	assert.Equal(t, "/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestServer_LoginStateIsUnique(t *testing.T) {
	e, m := newTestEcho(t, newTestConfig())
	m.auth.EXPECT().LoginURL(mock.Anything).Return("https://www.facebook.com/dialog")

	first := findCookie(serve(e, httptest.NewRequest(http.MethodGet, "/auth/login", nil)), testStateCookie)
	second := findCookie(serve(e, httptest.NewRequest(http.MethodGet, "/auth/login", nil)), testStateCookie)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.NotEqual(t, first.Value, second.Value)
}

func TestServer_CallbackSuccess(t *testing.T) {
	cfg := newTestConfig()
	cfg.Env.Env = constants.EnvDevelop
	e, m := newTestEcho(t, cfg)

	expiresAt := time.Now().Add(entity.SessionLifetime)
	m.auth.EXPECT().HandleCallback(mock.Anything, usecase.CallbackInput{
		Code:          "auth-code",
		State:         "state-1",
		ExpectedState: "state-1",
	}).Return(&usecase.CallbackResult{
		User:    &entity.User{ID: uuid.New(), MetaUserID: "10001"},
		Session: &entity.SessionToken{Value: testSessionToken, ExpiresAt: expiresAt},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=auth-code&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: testStateCookie, Value: "state-1"})
	rec := serve(e, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, testFrontendURL+"/dashboard", rec.Header().Get(echo.HeaderLocation))

	session := findCookie(rec, testSessionCookie)
	require.NotNil(t, session)
	assert.Equal(t, testSessionToken, session.Value)
	assert.Equal(t, "/", session.Path)
	assert.True(t, session.HttpOnly)
	assert.False(t, session.Secure, "plain cookies outside production")
	assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
	assert.WithinDuration(t, expiresAt, session.Expires, time.Second)

	state := findCookie(rec, testStateCookie)
	require.NotNil(t, state)
	assert.Empty(t, state.Value)
	assert.Negative(t, state.MaxAge)
}

func TestServer_CallbackFailures(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		err       error
		wantError string
	}{
		{
			name:      "user declined",
			query:     "error=access_denied&state=s",
			err:       domainerrors.ErrAuthorizationDenied.WithDetails("access_denied"),
			wantError: "access_denied",
		},
		{
			name:      "no code",
			query:     "state=s",
			err:       domainerrors.ErrAuthorizationDenied.WithDetails("no_code"),
			wantError: "no_code",
		},
		{
			name:      "state mismatch",
			query:     "code=c&state=other",
			err:       domainerrors.ErrInvalidState,
			wantError: "auth_failed",
		},
		{
			name:      "exchange failed",
			query:     "code=c&state=s",
			err:       domainerrors.ErrTokenExchange.WithCause(errors.New("status 400")),
			wantError: "auth_failed",
		},
		{
			name:      "transaction failed",
			query:     "code=c&state=s",
			err:       domainerrors.ErrExchangeTransaction.WithCause(errors.New("unique violation on users")),
			wantError: "auth_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestEcho(t, newTestConfig())
			m.auth.EXPECT().HandleCallback(mock.Anything, mock.AnythingOfType("usecase.CallbackInput")).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodGet, "/auth/callback?"+tt.query, nil)
			req.AddCookie(&http.Cookie{Name: testStateCookie, Value: "s"})
			rec := serve(e, req)

			require.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, testFrontendURL+"/login?error="+tt.wantError, rec.Header().Get(echo.HeaderLocation))
			assert.Nil(t, findCookie(rec, testSessionCookie))
		})
	}
}

func TestServer_Logout(t *testing.T) {
	t.Run("with session", func(t *testing.T) {
		e, m := newTestEcho(t, newTestConfig())
		m.sessions.EXPECT().Destroy(mock.Anything, testSessionToken).Return(nil)

		rec := serve(e, withSession(httptest.NewRequest(http.MethodPost, "/auth/logout", nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		cookie := findCookie(rec, testSessionCookie)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("without session", func(t *testing.T) {
		e, _ := newTestEcho(t, newTestConfig())

		rec := serve(e, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		e, m := newTestEcho(t, newTestConfig())
		m.sessions.EXPECT().Destroy(mock.Anything, testSessionToken).
			Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "delete session"))

		rec := serve(e, withSession(httptest.NewRequest(http.MethodPost, "/auth/logout", nil)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, findCookie(rec, testSessionCookie))
	})
}

func TestServer_CORS(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())

	t.Run("dashboard origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/ad-accounts", nil)
		req.Header.Set(echo.HeaderOrigin, testFrontendURL)
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		rec := serve(e, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, testFrontendURL, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/ad-accounts", nil)
		req.Header.Set(echo.HeaderOrigin, "https://evil.example.com")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
		rec := serve(e, req)

		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})
}

func TestServer_RateLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1}
	e, m := newTestEcho(t, cfg)
	m.sessions.EXPECT().CurrentUserID(mock.Anything, testSessionToken).
		Return(uuid.Nil, domainerrors.ErrUnauthenticated).Once()

	first := serve(e, withSession(httptest.NewRequest(http.MethodGet, "/auth/me", nil)))
	second := serve(e, withSession(httptest.NewRequest(http.MethodGet, "/auth/me", nil)))
	health := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusUnauthorized, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, second).Code)
	assert.Equal(t, http.StatusOK, health.Code)
}

func TestServer_Metrics(t *testing.T) {
	e, _ := newTestEcho(t, newTestConfig())

	serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))
	serve(e, httptest.NewRequest(http.MethodGet, "/api/ad-accounts", nil))

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `adchecker_http_requests_total{method="GET",route="/health",status="200"} 1`), body)
	assert.True(t, strings.Contains(body, `adchecker_http_requests_total{method="GET",route="/api/ad-accounts",status="401"} 1`), body)
}
