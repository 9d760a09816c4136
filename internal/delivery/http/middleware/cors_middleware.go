package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured frontend origins. A single "*" entry
// allows every origin, without credentials. No entries rejects every
// cross-origin request.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	config.MaxAge = 12 * time.Hour

	switch {
	case len(allowedOrigins) == 0:
		config.AllowOriginFunc = func(string) bool { return false }
	case len(allowedOrigins) == 1 && allowedOrigins[0] == "*":
		config.AllowAllOrigins = true
	default:
		config.AllowOrigins = allowedOrigins
		config.AllowCredentials = true
	}

	return cors.New(config)
}
