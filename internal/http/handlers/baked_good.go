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

var errNoBakedGoods = apierr.NotFound("baked_goods_empty", "No baked goods found")

type BakedGoodHandler struct {
	log   *logger.Logger
	goods repos.BakedGoodRepo
}

func NewBakedGoodHandler(log *logger.Logger, goods repos.BakedGoodRepo) *BakedGoodHandler {
	return &BakedGoodHandler{
		log:   log.With("handler", "BakedGoodHandler"),
		goods: goods,
	}
}

// GET /baked_goods/by_price
func (h *BakedGoodHandler) ListByPrice(c *gin.Context) {
	ctx := c.Request.Context()
	goods, err := h.goods.ListByPriceDesc(ctx, nil)
	if err != nil {
		h.log.Error("ListByPrice failed", append([]interface{}{"error", err}, ctxutil.LogFields(ctx)...)...)
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view.BakedGoods(goods))
}

// GET /baked_goods/most_expensive
func (h *BakedGoodHandler) MostExpensive(c *gin.Context) {
	ctx := c.Request.Context()
	good, err := h.goods.MostExpensive(ctx, nil)
	if errors.Is(err, repos.ErrNotFound) {
		response.RespondError(c, errNoBakedGoods)
		return
	}
	if err != nil {
		h.log.Error("MostExpensive failed", append([]interface{}{"error", err}, ctxutil.LogFields(ctx)...)...)
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, view.BakedGood(good))
}
