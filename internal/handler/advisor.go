package handler

import (
	"gelato-pos/internal/advisor"
	"gelato-pos/internal/store"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// AdvisorHandler serves AI-generated promotional offers. Each request is a
// fresh external call; failures come back as an empty list.
type AdvisorHandler struct {
	Store  *store.Store
	Client *advisor.Client
}

func NewAdvisorHandler(s *store.Store, client *advisor.Client) *AdvisorHandler {
	return &AdvisorHandler{Store: s, Client: client}
}

func (h *AdvisorHandler) ListInsights(c *gin.Context) {
	insights := h.Client.FetchAdvice(
		c.Request.Context(),
		h.Store.ListStock(""),
		h.Store.ListTransactions(),
	)
	util.Success(c, util.Response{
		"insights": insights,
	})
}
