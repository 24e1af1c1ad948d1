package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bakery-api/internal/http/response"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

type HealthHandler struct {
	log  *logger.Logger
	ping func(ctx context.Context) error
}

// NewHealthHandler takes the storage ping used by the readiness probe. A nil
// ping reports ready unconditionally.
func NewHealthHandler(log *logger.Logger, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), ping: ping}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			h.log.Warn("Readiness check failed", "error", err)
			response.RespondJSON(c, http.StatusServiceUnavailable, response.ErrorBody{Error: "database unavailable"})
			return
		}
	}
	response.RespondOK(c, gin.H{"status": "ok"})
}
