package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/bakery-api/internal/http/response"
)

// JSONFormat selects indented or compact JSON bodies for every response.
func JSONFormat(pretty bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(response.PrettyJSONKey, pretty)
		c.Next()
	}
}
