// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"yelocar/internal/delivery/api/middleware"
	"yelocar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contactRateLimitScope = "contact"

type RouterParams struct {
	fx.In

	CarHandler          *handler.CarHandler
	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	ContactHandler      *handler.ContactHandler
	ConnectivityHandler *handler.ConnectivityHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	carHandler          *handler.CarHandler
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	contactHandler      *handler.ContactHandler
	connectivityHandler *handler.ConnectivityHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		carHandler:          params.CarHandler,
		authHandler:         params.AuthHandler,
		profileHandler:      params.ProfileHandler,
		contactHandler:      params.ContactHandler,
		connectivityHandler: params.ConnectivityHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
	}

	apiV1 := e.Group("/api/v1")

	// Catalog browsing is public
	carsGroup := apiV1.Group("/cars")
	{
		carsGroup.GET("", r.carHandler.Search)
		carsGroup.GET("/facets", r.carHandler.Facets)
		carsGroup.POST("/tags/select", r.carHandler.SelectTag)
		carsGroup.GET("/:id", r.carHandler.Get)
		carsGroup.GET("/:id/qr", r.carHandler.ShareQR)
	}

	apiV1.POST("/contact", r.contactHandler.Submit, r.rateLimitMiddleware.PerIP(contactRateLimitScope))

	apiV1.GET("/connectivity", r.connectivityHandler.Status)
	apiV1.GET("/connectivity/stream", r.connectivityHandler.Stream)

	// Routes below act on the signed-in user
	auth := r.authMiddleware.Authenticate
	apiV1.GET("/profile", r.profileHandler.Get, auth)
	apiV1.PATCH("/profile", r.profileHandler.Update, auth)
	apiV1.POST("/profile/refresh", r.profileHandler.Refresh, auth)
	apiV1.DELETE("/account", r.profileHandler.DeleteAccount, auth)
}
