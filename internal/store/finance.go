package store

import (
	"strings"

	"gelato-pos/internal/models"

	"github.com/google/uuid"
)

// Totals aggregates the financial ledger.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// ListTransactions returns a copy of the ledger in insertion order.
func (s *Store) ListTransactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// RecordTransaction appends one entry to the append-only ledger. A zero
// amount, blank description or unknown type is a silent no-op. Category
// defaults to "Geral", date to now. The ledger does not enforce the
// payment-method-on-income convention; that is the callers' contract.
func (s *Store) RecordTransaction(t models.Transaction) (models.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.Description = strings.TrimSpace(t.Description)
	if t.Amount == 0 || t.Description == "" || !t.Type.Valid() {
		return models.Transaction{}, false, nil
	}
	t.ID = uuid.NewString()
	if t.Category == "" {
		t.Category = "Geral"
	}
	if t.Date == "" {
		t.Date = nowISO()
	}

	s.transactions = append(s.transactions, t)
	if err := s.saveTransactions(); err != nil {
		return models.Transaction{}, false, err
	}
	return t, true, nil
}

// TransactionCount reports the ledger size.
func (s *Store) TransactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

// TotalsSummary sums income and expense over the whole ledger.
func (s *Store) TotalsSummary() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t Totals
	for _, tx := range s.transactions {
		switch tx.Type {
		case models.TransactionIncome:
			t.Income += tx.Amount
		case models.TransactionExpense:
			t.Expense += tx.Amount
		}
	}
	t.Net = t.Income - t.Expense
	return t
}

// IncomeByPaymentMethod sums income per method. Every enumerated method is
// present in the result, zeros included; chart views filter the zeros out.
func (s *Store) IncomeByPaymentMethod() map[models.PaymentMethod]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sums := map[models.PaymentMethod]float64{
		models.PaymentCash: 0,
		models.PaymentPix:  0,
		models.PaymentCard: 0,
	}
	for _, tx := range s.transactions {
		if tx.Type != models.TransactionIncome {
			continue
		}
		if _, ok := sums[tx.PaymentMethod]; ok {
			sums[tx.PaymentMethod] += tx.Amount
		}
	}
	return sums
}
