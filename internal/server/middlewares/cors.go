package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AllOrigins is the CORS origin value that allows any origin.
const AllOrigins = "*"

// CORS allows cross-origin requests from a single origin, or from anywhere
// when origin is "*" or empty. Requests from other origins are not rejected,
// they are answered with the configured origin and the browser enforces it.
func CORS(origin string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods: []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{
			"Origin",
			"Content-Length",
			"Content-Type",
			"Authorization",
		},
		MaxAge: 12 * time.Hour,
	}

	if origin == "" || origin == AllOrigins {
		config.AllowAllOrigins = true
		return cors.New(config)
	}

	config.AllowOrigins = []string{origin}
	allowed := cors.New(config)

	return func(c *gin.Context) {
		reqOrigin := c.GetHeader("Origin")
		if reqOrigin == "" || reqOrigin == origin {
			allowed(c)
			return
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Vary", "Origin")
		if c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != "" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
