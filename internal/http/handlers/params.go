package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// uintParam parses a path segment as an unsigned id. Signs, blanks and
// anything outside uint range are rejected.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	if raw == "" || raw[0] == '+' {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
