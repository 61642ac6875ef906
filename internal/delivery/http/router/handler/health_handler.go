package handler

import (
	"net/http"

	"adchecker/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, response.HealthResponse{Status: "ok"})
}
