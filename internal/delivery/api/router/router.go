// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"showmyshop/config"
	"showmyshop/internal/delivery/api/middleware"
	"showmyshop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShopHandler      *handler.ShopHandler
	ReviewHandler    *handler.ReviewHandler
	AdminHandler     *handler.AdminHandler
	CatalogHandler   *handler.CatalogHandler
	AssistantHandler *handler.AssistantHandler
	PlaceHandler     *handler.PlaceHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	shopHandler      *handler.ShopHandler
	reviewHandler    *handler.ReviewHandler
	adminHandler     *handler.AdminHandler
	catalogHandler   *handler.CatalogHandler
	assistantHandler *handler.AssistantHandler
	placeHandler     *handler.PlaceHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shopHandler:      params.ShopHandler,
		reviewHandler:    params.ReviewHandler,
		adminHandler:     params.AdminHandler,
		catalogHandler:   params.CatalogHandler,
		assistantHandler: params.AssistantHandler,
		placeHandler:     params.PlaceHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	authenticated := r.authMiddleware.Authenticate

	// Shop registry. Reads are public, writes need a verified caller.
	shopsGroup := api.Group("/shops")
	{
		shopsGroup.GET("", r.shopHandler.ListShops)
		shopsGroup.POST("", r.shopHandler.CreateShop, authenticated)

		shopsGroup.GET("/search", r.catalogHandler.SearchShops)
		shopsGroup.GET("/geojson", r.catalogHandler.ShopMarkers)

		shopsGroup.GET("/:id", r.shopHandler.GetShop)
		shopsGroup.PUT("/:id", r.shopHandler.UpdateShop, authenticated)
		shopsGroup.DELETE("/:id", r.shopHandler.DeleteShop, authenticated)
		shopsGroup.GET("/:id/qr", r.shopHandler.ShopQRCode)

		shopsGroup.GET("/:id/reviews", r.reviewHandler.ListReviews)
		shopsGroup.POST("/:id/reviews", r.reviewHandler.AddReview, authenticated)
	}

	// Moderation routes require authentication and the admin role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/shops", r.adminHandler.ListShops)
		adminGroup.PUT("/shops/:id/approve", r.adminHandler.ApproveShop)
		adminGroup.DELETE("/shops/:id", r.adminHandler.DeleteShop)
	}

	api.POST("/assistant/messages", r.assistantHandler.PostMessage)

	api.GET("/places/nearby", r.placeHandler.Nearby)

	geocodeGroup := api.Group("/geocode")
	{
		geocodeGroup.GET("/search", r.placeHandler.GeocodeSearch)
		geocodeGroup.GET("/reverse", r.placeHandler.GeocodeReverse)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.POST("/token", r.testHandler.IssueToken)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
