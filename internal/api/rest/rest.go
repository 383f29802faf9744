package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		// Profile endpoints, keyed by wallet address
		api.GET("/profile/:wallet_address", handler.GetProfile)
		api.PUT("/profile/:wallet_address", handler.UpdateProfile)

		// Asset endpoints (read only, served from the chain)
		api.GET("/assets", handler.ListAssets)
		api.GET("/assets/stats", handler.GetOwnerStats)
		api.GET("/assets/:token_id", handler.GetAsset)
		api.GET("/assets/:token_id/history", handler.GetAssetHistory)
	}
}
