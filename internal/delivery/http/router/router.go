// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hivefund/internal/delivery/http/middleware"
	"hivefund/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	CampaignHandler   *handler.CampaignHandler
	DonationHandler   *handler.DonationHandler
	SuggestionHandler *handler.SuggestionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	campaignHandler   *handler.CampaignHandler
	donationHandler   *handler.DonationHandler
	suggestionHandler *handler.SuggestionHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		campaignHandler:   params.CampaignHandler,
		donationHandler:   params.DonationHandler,
		suggestionHandler: params.SuggestionHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)

	// User routes
	e.GET("/users", r.userHandler.ListUsers)
	e.GET("/users/me", r.userHandler.Me, r.authMiddleware.Authenticate)

	// Campaign routes; reads are public, writes require a session
	e.GET("/campaigns", r.campaignHandler.List)
	e.GET("/campaigns/:id", r.campaignHandler.Get)
	e.GET("/campaigns/:id/donations", r.donationHandler.ListByCampaign)
	e.POST("/campaigns", r.campaignHandler.Create, r.authMiddleware.Authenticate)
	e.PUT("/campaigns/:id", r.campaignHandler.Update, r.authMiddleware.Authenticate)
	e.DELETE("/campaigns/:id", r.campaignHandler.Delete, r.authMiddleware.Authenticate)

	// Donation routes; the leaderboard is public, the donor's own history is not
	e.POST("/donations", r.donationHandler.Create, r.authMiddleware.Authenticate)
	e.GET("/donations/user", r.donationHandler.ListMine, r.authMiddleware.Authenticate)
	e.GET("/donations/leaderboard", r.donationHandler.Leaderboard)

	// AI suggestion routes
	e.POST("/ai/suggestions", r.suggestionHandler.Suggest)
}
