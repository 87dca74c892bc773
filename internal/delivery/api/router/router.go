// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"alertradar/internal/delivery/api/middleware"
	"alertradar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler   *handler.AlertHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	alertHandler   *handler.AlertHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:   params.AlertHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every alert route accepts anonymous callers
	alerts := e.Group("/alerts")
	alerts.Use(r.authMiddleware.Identify)
	{
		alerts.POST("", r.alertHandler.SubmitAlert)
		alerts.GET("/nearby", r.alertHandler.Nearby)
		alerts.GET("/nearby/stream", r.alertHandler.StreamNearby)
		alerts.POST("/nearby/stream/:id/location", r.alertHandler.UpdateStreamLocation)
	}
}
