// Package router contains routing setup for the HTTP delivery.
package router

import (
	"farmlink/config"
	"farmlink/internal/delivery/api/middleware"
	"farmlink/internal/delivery/api/router/handler"
	"farmlink/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	CropHandler    *handler.CropHandler
	RequestHandler *handler.RequestHandler
	ProfileHandler *handler.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	cropHandler    *handler.CropHandler
	requestHandler *handler.RequestHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		cropHandler:    params.CropHandler,
		requestHandler: params.RequestHandler,
		profileHandler: params.ProfileHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/farmer/register", r.authHandler.RegisterFarmer)
		authGroup.POST("/firm/register", r.authHandler.RegisterFirm)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Public marketplace routes
	{
		api.GET("/crops", r.cropHandler.ListCrops)
		api.GET("/crops/:cropId/qr", r.cropHandler.CropShareQR)
		api.GET("/allrequests", r.requestHandler.PendingBuyRequests)
		api.GET("/farmers", r.profileHandler.ListFarmers)
		api.GET("/admin", r.profileHandler.ListAllUsers)
	}

	// Routes open to any authenticated role
	authed := api.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/crop-details/:cropId", r.cropHandler.GetCrop)
	}

	// Farmer routes: listings and request decisions
	farmerGroup := api.Group("")
	farmerGroup.Use(r.authMiddleware.Authenticate)
	farmerGroup.Use(r.authMiddleware.RequireRole(entity.RoleFarmer.String()))
	{
		farmerGroup.POST("/add-crop", r.cropHandler.CreateCrop)
		farmerGroup.PUT("/crops/:cropId", r.cropHandler.UpdateCrop)
		farmerGroup.GET("/listed-crops", r.cropHandler.MyCrops)
		farmerGroup.GET("/requested-crops", r.requestHandler.IncomingRequests)
		farmerGroup.PATCH("/accept/:requestId", r.requestHandler.AcceptCropRequest)
		farmerGroup.PATCH("/reject/:requestId", r.requestHandler.RejectCropRequest)
		farmerGroup.PATCH("/accept-buy/:requestId", r.requestHandler.AcceptBuyRequest)
		farmerGroup.PATCH("/reject-buy/:requestId", r.requestHandler.RejectBuyRequest)
		farmerGroup.GET("/farmer/profile", r.profileHandler.GetProfile)
		farmerGroup.PUT("/farmer/profile", r.profileHandler.UpdateFarmerProfile)
	}

	// Firm routes: filing requests and tracking their outcomes
	firmGroup := api.Group("")
	firmGroup.Use(r.authMiddleware.Authenticate)
	firmGroup.Use(r.authMiddleware.RequireRole(entity.RoleFirm.String()))
	{
		firmGroup.POST("/crop-request/:cropId", r.requestHandler.CreateCropRequest)
		firmGroup.POST("/add-request", r.requestHandler.CreateBuyRequest)
		firmGroup.GET("/myrequests", r.requestHandler.MyCropRequests)
		firmGroup.GET("/my-buy-requests", r.requestHandler.MyBuyRequests)
		firmGroup.GET("/firm/profile", r.profileHandler.GetProfile)
		firmGroup.PUT("/firm/profile", r.profileHandler.UpdateFirmProfile)
	}
}
