package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gelato-pos/internal/models"
	"gelato-pos/internal/store"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// TableHandler exposes the table/order ledger.
type TableHandler struct {
	Store *store.Store
}

func NewTableHandler(s *store.Store) *TableHandler {
	return &TableHandler{Store: s}
}

func (h *TableHandler) ListTables(c *gin.Context) {
	tables := h.Store.ListTables()
	util.Success(c, util.Response{
		"tables": tables,
	})
}

func tableID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "ID de mesa inválido")
		return 0, false
	}
	return id, true
}

type addLineReq struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddOrderLine adds one unit of a product to a table's open order.
func (h *TableHandler) AddOrderLine(c *gin.Context) {
	id, ok := tableID(c)
	if !ok {
		return
	}

	var req addLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos")
		return
	}

	line, err := h.Store.AddOrderLine(id, req.ProductID)
	switch {
	case errors.Is(err, store.ErrTableNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Mesa não encontrada")
		return
	case errors.Is(err, store.ErrProductNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Produto não encontrado")
		return
	case err != nil:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao salvar comanda")
		return
	}

	util.Success(c, util.Response{
		"line": line,
	})
}

// RemoveOrderLine deletes one line from a table's open order.
func (h *TableHandler) RemoveOrderLine(c *gin.Context) {
	id, ok := tableID(c)
	if !ok {
		return
	}

	err := h.Store.RemoveOrderLine(id, c.Param("lineId"))
	switch {
	case errors.Is(err, store.ErrTableNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Mesa não encontrada")
		return
	case err != nil:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao salvar comanda")
		return
	}

	util.Success(c, util.Response{
		"message": "Item removido",
	})
}

type checkoutReq struct {
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required"`
}

// Checkout closes a table's order, recording the sale when the total is
// positive.
func (h *TableHandler) Checkout(c *gin.Context) {
	id, ok := tableID(c)
	if !ok {
		return
	}

	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Selecione a forma de pagamento")
		return
	}

	tx, recorded, err := h.Store.Checkout(id, req.PaymentMethod)
	switch {
	case errors.Is(err, store.ErrInvalidPayment):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Forma de pagamento inválida")
		return
	case errors.Is(err, store.ErrTableNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Mesa não encontrada")
		return
	case errors.Is(err, store.ErrEmptyOrder):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Mesa sem consumo")
		return
	case err != nil:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao finalizar mesa")
		return
	}

	resp := util.Response{"recorded": recorded}
	if recorded {
		resp["transaction"] = tx
	}
	util.Success(c, resp)
}
