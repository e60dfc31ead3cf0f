package handler

import (
	"net/http"

	"gelato-pos/internal/models"
	"gelato-pos/internal/store"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// FinanceHandler exposes the append-only financial ledger.
type FinanceHandler struct {
	Store *store.Store
}

func NewFinanceHandler(s *store.Store) *FinanceHandler {
	return &FinanceHandler{Store: s}
}

// ListTransactions returns the full ledger plus its aggregates. The raw
// payment-method aggregate always carries all three methods, zeros included.
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	totals := h.Store.TotalsSummary()
	util.Success(c, util.Response{
		"items": h.Store.ListTransactions(),
		"summary": gin.H{
			"income":            totals.Income,
			"expense":           totals.Expense,
			"net":               totals.Net,
			"by_payment_method": h.Store.IncomeByPaymentMethod(),
		},
	})
}

type createTransactionReq struct {
	Type          models.TransactionType `json:"type" binding:"required"`
	Amount        float64                `json:"amount" binding:"required"`
	Description   string                 `json:"description" binding:"required"`
	Category      string                 `json:"category"`
	Date          string                 `json:"date"`
	PaymentMethod models.PaymentMethod   `json:"paymentMethod"`
}

// CreateTransaction records one manual income or expense entry. By
// convention the payment method is kept only on income.
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var req createTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos")
		return
	}
	if !req.Type.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Tipo de transação inválido")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe um valor válido")
		return
	}
	if req.Date != "" {
		if err := util.ValidateDate(req.Date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Data inválida")
			return
		}
	}

	method := req.PaymentMethod
	if req.Type == models.TransactionIncome {
		if !method.Valid() {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Selecione a forma de pagamento")
			return
		}
	} else {
		method = ""
	}

	tx, ok, err := h.Store.RecordTransaction(models.Transaction{
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   req.Description,
		Category:      req.Category,
		Date:          req.Date,
		PaymentMethod: method,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao salvar transação")
		return
	}
	if !ok {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Preencha descrição e valor")
		return
	}

	util.Success(c, util.Response{
		"transaction": tx,
	})
}

type quickSaleReq struct {
	Amount        float64              `json:"amount" binding:"required"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required"`
}

// QuickSale records a self-service counter sale from just amount and method.
func (h *FinanceHandler) QuickSale(c *gin.Context) {
	var req quickSaleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Parâmetros inválidos")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Informe um valor válido")
		return
	}
	if !req.PaymentMethod.Valid() {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Forma de pagamento inválida")
		return
	}

	tx, ok, err := h.Store.RecordTransaction(models.Transaction{
		Type:          models.TransactionIncome,
		Amount:        req.Amount,
		Description:   "Venda Rápida - Self-Service",
		Category:      "Self-Service",
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil || !ok {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao salvar venda")
		return
	}

	util.Success(c, util.Response{
		"transaction": tx,
	})
}
