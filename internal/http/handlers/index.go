package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bakery-api/internal/http/response"
)

const indexBanner = "<h1>Bakery GET API</h1>"

type IndexHandler struct{}

func NewIndexHandler() *IndexHandler { return &IndexHandler{} }

func (h *IndexHandler) Index(c *gin.Context) {
	response.RespondHTML(c, http.StatusOK, indexBanner)
}
