package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupCORS configures CORS middleware. An empty allowOrigin opens the API to
// every origin, which fits a public read surface; set it to lock writes down
// to one frontend.
func SetupCORS(allowOrigin string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}

	if allowOrigin == "" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = []string{allowOrigin}
	}

	return cors.New(config)
}
