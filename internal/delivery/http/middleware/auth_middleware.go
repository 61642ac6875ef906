package middleware

import (
	"log/slog"

	"adchecker/config"
	deliverycontext "adchecker/internal/delivery/context"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/errors"
	"adchecker/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the session cookie to the signed-in user.
type AuthMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		cookieName: cfg.Security.SessionCookieName,
	}
}

// Authenticate rejects requests without a live session with ErrUnauthenticated.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return domainerrors.ErrUnauthenticated
		}

		ctx := c.Request().Context()
		userID, err := m.sessions.CurrentUserID(ctx, cookie.Value)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUserID(c, userID)
		ctx = deliverycontext.WithUserID(ctx, userID)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
