package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bakery-api/internal/data/repos"
	"github.com/yungbote/bakery-api/internal/http/response"
	"github.com/yungbote/bakery-api/internal/http/view"
	"github.com/yungbote/bakery-api/internal/platform/apierr"
	"github.com/yungbote/bakery-api/internal/platform/ctxutil"
	"github.com/yungbote/bakery-api/internal/platform/logger"
)

var errBakeryNotFound = apierr.NotFound("bakery_not_found", "Bakery not found")

type BakeryHandler struct {
	log      *logger.Logger
	bakeries repos.BakeryRepo
}

func NewBakeryHandler(log *logger.Logger, bakeries repos.BakeryRepo) *BakeryHandler {
	return &BakeryHandler{
		log:      log.With("handler", "BakeryHandler"),
		bakeries: bakeries,
	}
}

// GET /bakeries
func (h *BakeryHandler) ListBakeries(c *gin.Context) {
	ctx := c.Request.Context()
	bakeries, err := h.bakeries.List(ctx, nil)
	if err != nil {
		h.log.Error("ListBakeries failed", append([]interface{}{"error", err}, ctxutil.LogFields(ctx)...)...)
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view.Bakeries(bakeries))
}

// GET /bakeries/:id
func (h *BakeryHandler) GetBakery(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		response.RespondNoRoute(c)
		return
	}

	ctx := c.Request.Context()
	bakery, err := h.bakeries.GetByID(ctx, nil, id)
	if errors.Is(err, repos.ErrNotFound) {
		response.RespondError(c, errBakeryNotFound)
		return
	}
	if err != nil {
		h.log.Error("GetBakery failed", append([]interface{}{"error", err, "bakery_id", id}, ctxutil.LogFields(ctx)...)...)
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view.Bakery(bakery))
}
