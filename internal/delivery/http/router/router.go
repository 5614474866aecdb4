// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"campwatch/internal/delivery/http/middleware"
	"campwatch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	NotificationHandler *handler.NotificationHandler
	SearchHandler       *handler.SearchHandler
	IdentityMiddleware  *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	notificationHandler *handler.NotificationHandler
	searchHandler       *handler.SearchHandler
	identityMiddleware  *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		notificationHandler: params.NotificationHandler,
		searchHandler:       params.SearchHandler,
		identityMiddleware:  params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.GET("/me", r.authHandler.Me)
	}

	// Only notification routes act on behalf of a user.
	notifications := api.Group("/notifications", r.identityMiddleware.Resolve)
	{
		for _, root := range []string{"", "/"} {
			notifications.POST(root, r.notificationHandler.Create)
			notifications.GET(root, r.notificationHandler.List)
		}
		notifications.GET("/:id", r.notificationHandler.Get)
		notifications.PUT("/:id", r.notificationHandler.Update)
		notifications.DELETE("/:id", r.notificationHandler.Delete)
		notifications.GET("/:id/history", r.notificationHandler.History)
		notifications.POST("/:id/test", r.notificationHandler.Test)
		notifications.POST("/:id/watch", r.notificationHandler.StartWatch)
		notifications.DELETE("/:id/watch", r.notificationHandler.StopWatch)
		notifications.GET("/:id/watch", r.notificationHandler.WatchStatus)
		notifications.GET("/:id/qrcode", r.notificationHandler.BookingQRCode)
	}

	search := api.Group("/search")
	{
		search.GET("/recreation-areas", r.searchHandler.RecreationAreas)
		search.GET("/campgrounds", r.searchHandler.Campgrounds)
		search.GET("/campsites", r.searchHandler.Campsites)
		search.GET("/providers", r.searchHandler.Providers)
	}
}
