// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"adchecker/config"
	deliverycontext "adchecker/internal/delivery/context"
	"adchecker/internal/delivery/http/response"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/errors"
	"adchecker/internal/usecase"

	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
)

const (
	stateCookiePath   = "/auth"
	stateCookieMaxAge = 10 * time.Minute

	// Login error indicators understood by the dashboard login page.
	loginErrorNoCode     = "no_code"
	loginErrorAuthFailed = "auth_failed"
)

// callbackQuery is the query string Meta appends to the redirect URI.
type callbackQuery struct {
	Code  string `query:"code"`
	Error string `query:"error"`
	State string `query:"state"`
}

// AuthHandler serves the OAuth login flow and the session endpoints.
type AuthHandler struct {
	auth     usecase.AuthUsecase
	sessions usecase.SessionUsecase
	cfg      *config.Config
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, sessions usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Login issues a CSRF state cookie and redirects to the Meta consent dialog.
func (h *AuthHandler) Login(c echo.Context) error {
	state := oauth2.GenerateVerifier()

	c.SetCookie(h.cookie(h.cfg.Security.StateCookieName, state, stateCookiePath, time.Now().Add(stateCookieMaxAge)))

	return c.Redirect(http.StatusFound, h.auth.LoginURL(state))
}

// Callback completes the OAuth exchange and redirects back to the dashboard.
// Failures never surface internal detail: the login page only receives an indicator.
func (h *AuthHandler) Callback(c echo.Context) error {
	var query callbackQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return c.Redirect(http.StatusFound, h.loginURL(loginErrorAuthFailed))
	}

	input := usecase.CallbackInput{
		Code:  query.Code,
		Error: query.Error,
		State: query.State,
	}
	if cookie, err := c.Cookie(h.cfg.Security.StateCookieName); err == nil {
		input.ExpectedState = cookie.Value
	}
	// The state is single use.
	c.SetCookie(h.expiredCookie(h.cfg.Security.StateCookieName, stateCookiePath))

	ctx := c.Request().Context()
	result, err := h.auth.HandleCallback(ctx, input)
	if err != nil {
		indicator := loginErrorIndicator(input, err)
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("OAuth callback failed",
			slog.String("indicator", indicator),
			slog.Any("error", err),
		)

		return c.Redirect(http.StatusFound, h.loginURL(indicator))
	}

	c.SetCookie(h.cookie(h.cfg.Security.SessionCookieName, result.Session.Value, "/", result.Session.ExpiresAt))

	return c.Redirect(http.StatusFound, h.cfg.Frontend.URL+"/dashboard")
}

// Logout revokes the current session and clears its cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.expiredCookie(h.cfg.Security.SessionCookieName, "/"))

	cookie, err := c.Cookie(h.cfg.Security.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return errors.WithStack(err)
		}
	}

	return response.Success(c)
}

// Me returns the signed-in user. Must be mounted behind AuthMiddleware.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	user, err := h.auth.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.NewMeResponse(user))
}

func (h *AuthHandler) loginURL(indicator string) string {
	return h.cfg.Frontend.URL + "/login?error=" + url.QueryEscape(indicator)
}

func (h *AuthHandler) cookie(name, value, path string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expires,
		MaxAge:   max(int(time.Until(expires).Seconds()), 1),
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie(name, path string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     path,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
}

// loginErrorIndicator picks what the login page is told about a failed callback.
// Only a denial reported by Meta is forwarded as is.
func loginErrorIndicator(input usecase.CallbackInput, err error) string {
	if !errors.Is(err, domainerrors.ErrAuthorizationDenied) {
		return loginErrorAuthFailed
	}
	if input.Error != "" {
		return input.Error
	}

	return loginErrorNoCode
}
