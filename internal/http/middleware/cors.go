package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var DefaultAllowOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:5555",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
	"http://127.0.0.1:5555",
}

// CORS allows read-only cross-origin access from the configured origins.
// "*" opens the API to any origin without credentials.
func CORS(allowOrigins []string) gin.HandlerFunc {
	if len(allowOrigins) == 0 {
		allowOrigins = DefaultAllowOrigins
	}
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", "X-Requested-With", headerRequestID, headerTraceID},
		ExposeHeaders: []string{headerRequestID, headerTraceID},
	}
	for _, o := range allowOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cors.New(cfg)
		}
	}
	cfg.AllowOrigins = allowOrigins
	return cors.New(cfg)
}
