package handler

import (
	"net/http"

	"gelato-pos/internal/models"
	"gelato-pos/internal/store"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// StockHandler exposes the inventory ledger.
type StockHandler struct {
	Store *store.Store
}

func NewStockHandler(s *store.Store) *StockHandler {
	return &StockHandler{Store: s}
}

type stockItemResp struct {
	models.InventoryItem
	LowStock bool `json:"lowStock"`
}

func toStockResp(items []models.InventoryItem) []stockItemResp {
	out := make([]stockItemResp, 0, len(items))
	for _, item := range items {
		out = append(out, stockItemResp{InventoryItem: item, LowStock: item.IsLowStock()})
	}
	return out
}

// ListStock returns the catalog, optionally filtered by ?search= on name or
// category.
func (h *StockHandler) ListStock(c *gin.Context) {
	items := h.Store.ListStock(c.Query("search"))
	util.Success(c, util.Response{
		"items": toStockResp(items),
	})
}

// ListLowStock returns only the items at or below their minimum.
func (h *StockHandler) ListLowStock(c *gin.Context) {
	items := h.Store.LowStock()
	util.Success(c, util.Response{
		"items": toStockResp(items),
	})
}

type createStockItemReq struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Quantity    float64 `json:"quantity" binding:"min=0"`
	Unit        string  `json:"unit"`
	MinQuantity float64 `json:"minQuantity" binding:"min=0"`
	Price       float64 `json:"price" binding:"min=0"`
}

func (h *StockHandler) CreateStockItem(c *gin.Context) {
	var req createStockItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos")
		return
	}

	item, ok, err := h.Store.AddStockItem(models.InventoryItem{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		MinQuantity: req.MinQuantity,
		Price:       req.Price,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao salvar item")
		return
	}
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe o nome do item")
		return
	}

	util.Success(c, util.Response{
		"item": stockItemResp{InventoryItem: item, LowStock: item.IsLowStock()},
	})
}

type updateStockItemReq struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Quantity    *float64 `json:"quantity" binding:"omitempty,min=0"`
	Unit        *string  `json:"unit"`
	MinQuantity *float64 `json:"minQuantity" binding:"omitempty,min=0"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
}

func (h *StockHandler) UpdateStockItem(c *gin.Context) {
	var req updateStockItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos")
		return
	}

	item, ok, err := h.Store.UpdateStockItem(c.Param("id"), store.StockItemUpdate{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		MinQuantity: req.MinQuantity,
		Price:       req.Price,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao salvar item")
		return
	}
	if !ok {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Item não encontrado")
		return
	}

	util.Success(c, util.Response{
		"item": stockItemResp{InventoryItem: item, LowStock: item.IsLowStock()},
	})
}

func (h *StockHandler) DeleteStockItem(c *gin.Context) {
	removed, err := h.Store.RemoveStockItem(c.Param("id"))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao remover item")
		return
	}
	if !removed {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "Item não encontrado")
		return
	}

	util.Success(c, util.Response{
		"message": "Item removido",
	})
}
