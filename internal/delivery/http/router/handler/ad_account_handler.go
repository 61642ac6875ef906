package handler

import (
	deliverycontext "adchecker/internal/delivery/context"
	"adchecker/internal/delivery/http/response"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/errors"
	"adchecker/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdAccountHandler serves the signed-in user's ad accounts.
type AdAccountHandler struct {
	uc usecase.AdAccountUsecase
}

// NewAdAccountHandler is the constructor for AdAccountHandler, injected by Fx.
func NewAdAccountHandler(uc usecase.AdAccountUsecase) *AdAccountHandler {
	return &AdAccountHandler{uc: uc}
}

// List returns the cached accounts, refetching them when the cache is stale.
func (h *AdAccountHandler) List(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	accounts, err := h.uc.GetAdAccounts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Accounts(c, accounts)
}

// Sync drops the cache and refetches the accounts from Meta.
func (h *AdAccountHandler) Sync(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	accounts, err := h.uc.SyncAdAccounts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Synced(c, accounts)
}
