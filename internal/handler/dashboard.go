package handler

import (
	"gelato-pos/internal/models"
	"gelato-pos/internal/store"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the shop overview: cash totals, low-stock alerts,
// table occupancy and the payment-method breakdown.
type DashboardHandler struct {
	Store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{Store: s}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	totals := h.Store.TotalsSummary()
	low := h.Store.LowStock()

	occupied := 0
	tables := h.Store.ListTables()
	for _, t := range tables {
		if t.Status == models.TableOccupied {
			occupied++
		}
	}

	// chart view: zero methods are left out, the raw aggregate keeps them
	sums := h.Store.IncomeByPaymentMethod()
	labels := map[models.PaymentMethod]string{
		models.PaymentCash: "Dinheiro",
		models.PaymentPix:  "Pix",
		models.PaymentCard: "Cartão",
	}
	payments := make([]gin.H, 0, len(sums))
	for _, m := range models.AllPaymentMethods() {
		if sums[m] == 0 {
			continue
		}
		payments = append(payments, gin.H{"name": labels[m], "value": sums[m]})
	}

	util.Success(c, util.Response{
		"income":          totals.Income,
		"expense":         totals.Expense,
		"balance":         totals.Net,
		"low_stock":       toStockResp(low),
		"low_stock_count": len(low),
		"occupied_tables": occupied,
		"total_tables":    len(tables),
		"payment_methods": payments,
	})
}
