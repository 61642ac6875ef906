// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"adchecker/internal/delivery/http/middleware"
	"adchecker/internal/delivery/http/router/handler"
	"adchecker/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	AdAccountHandler *handler.AdAccountHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	adAccountHandler *handler.AdAccountHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		adAccountHandler: params.AdAccountHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/login", r.authHandler.Login)
		authGroup.GET("/callback", r.authHandler.Callback)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/ad-accounts", r.adAccountHandler.List)
		apiGroup.POST("/sync", r.adAccountHandler.Sync)
	}
}
