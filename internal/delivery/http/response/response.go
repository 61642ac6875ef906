// Package response holds the JSON bodies served to the dashboard.
package response

import (
	"net/http"

	deliverycontext "adchecker/internal/delivery/context"
	"adchecker/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error     string `json:"error"`                // User-friendly message
	Code      string `json:"code"`                 // Business error code, e.g. "TOKEN_EXPIRED"
	RequestID string `json:"request_id,omitempty"` // Request tracking ID
}

// AccountsResponse is returned by the account list endpoint.
type AccountsResponse struct {
	Accounts []entity.AdAccount `json:"accounts"`
}

// SyncResponse is returned by the sync endpoint.
type SyncResponse struct {
	Accounts []entity.AdAccount `json:"accounts"`
	Synced   bool               `json:"synced"`
}

// MeResponse is the projection of the signed-in user.
type MeResponse struct {
	ID         string `json:"id"`
	MetaUserID string `json:"meta_user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// SuccessResponse acknowledges a command without payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is served by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewMeResponse projects a user for the dashboard.
func NewMeResponse(user *entity.User) MeResponse {
	return MeResponse{
		ID:         user.ID.String(),
		MetaUserID: user.MetaUserID,
		Name:       user.Name,
		Email:      user.Email,
	}
}

// Accounts returns the account list response. A nil list is rendered as [].
func Accounts(c echo.Context, accounts []entity.AdAccount) error {
	return c.JSON(http.StatusOK, AccountsResponse{Accounts: nonNil(accounts)})
}

// Synced returns the sync response.
func Synced(c echo.Context, accounts []entity.AdAccount) error {
	return c.JSON(http.StatusOK, SyncResponse{Accounts: nonNil(accounts), Synced: true})
}

// Success returns {"success":true}.
func Success(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Code:      errorCode,
		RequestID: deliverycontext.GetRequestIDFromContext(c.Request().Context()),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

func nonNil(accounts []entity.AdAccount) []entity.AdAccount {
	if accounts == nil {
		return []entity.AdAccount{}
	}

	return accounts
}
